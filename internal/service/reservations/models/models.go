package models

// Failure причина, по которой операция не применилась к записи
type Failure struct {
	ID  string
	Err error
}

// BatchResult отчет о групповой операции по каждому идентификатору
type BatchResult struct {
	Succeeded []string
	Failed    []Failure
}

// Complete возвращает true, если операция применилась ко всем записям
func (r *BatchResult) Complete() bool {
	return len(r.Failed) == 0
}

// Partial возвращает true, если часть записей изменена, а часть нет
func (r *BatchResult) Partial() bool {
	return len(r.Succeeded) > 0 && len(r.Failed) > 0
}

// Fail добавляет неуспешный идентификатор
func (r *BatchResult) Fail(id string, err error) {
	r.Failed = append(r.Failed, Failure{ID: id, Err: err})
}
