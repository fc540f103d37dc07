package accounts

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Directory таблица учетных данных в памяти
// Пароли хранятся открытым текстом: это демонстрационный вход без реальной аутентификации
type Directory struct {
	byUsername map[string]Account
	byEmail    map[string]Account
	log        Logger
}

// NewDirectory создает справочник. Пустой список заменяется DefaultAccounts.
func NewDirectory(list []Account, log Logger) (*Directory, error) {
	if len(list) == 0 {
		log.Warn("Accounts: no accounts configured, using demo accounts")
		list = DefaultAccounts()
	}

	d := &Directory{
		byUsername: make(map[string]Account, len(list)),
		byEmail:    make(map[string]Account, len(list)),
		log:        log,
	}

	for _, acc := range list {
		if acc.Username == "" || acc.Password == "" {
			return nil, fmt.Errorf("%w: username and password are required", ErrInvalidAccount)
		}
		if acc.Role != domain.RoleStudent && acc.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: %s has unknown role %q", ErrInvalidAccount, acc.Username, acc.Role)
		}
		if _, dup := d.byUsername[acc.Username]; dup {
			return nil, fmt.Errorf("%w: duplicate username %s", ErrInvalidAccount, acc.Username)
		}
		d.byUsername[acc.Username] = acc
		if acc.Email != "" {
			d.byEmail[strings.ToLower(acc.Email)] = acc
		}
	}

	log.Info("Accounts: loaded %d accounts", len(d.byUsername))
	return d, nil
}

// Authenticate проверяет логин (email или имя пользователя) и пароль
func (d *Directory) Authenticate(_ context.Context, login, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)

	acc, ok := d.byEmail[strings.ToLower(login)]
	if !ok {
		acc, ok = d.byUsername[login]
	}
	if !ok || subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) != 1 {
		d.log.Warn("Authenticate: failed login for %q", login)
		return nil, ErrInvalidCredentials
	}

	return toUser(acc), nil
}

// GetUser возвращает пользователя по имени
func (d *Directory) GetUser(_ context.Context, username string) (*domain.User, error) {
	acc, ok := d.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return toUser(acc), nil
}

func toUser(acc Account) *domain.User {
	return &domain.User{Username: acc.Username, Email: acc.Email, Role: acc.Role}
}
