package accounts

import "github.com/m04kA/SMC-FacilityBookingService/internal/domain"

// Account запись таблицы учетных данных
type Account struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// DefaultAccounts демонстрационные учетные записи
func DefaultAccounts() []Account {
	return []Account{
		{Username: "Mahasiswa1", Email: "mahasiswa1@gmail.com", Password: "mahasiswa1", Role: domain.RoleStudent},
		{Username: "Mahasiswa2", Email: "mahasiswa2@gmail.com", Password: "mahasiswa2", Role: domain.RoleStudent},
		{Username: "Mahasiswa3", Email: "mahasiswa3@gmail.com", Password: "mahasiswa3", Role: domain.RoleStudent},
		{Username: "Admin", Email: "admin@gmail.com", Password: "admin", Role: domain.RoleAdmin},
	}
}
