package view

// FormMode неизменяемое значение, определяющее поведение формы подписки:
// создание новой записи или обновление существующей. Передается в обработчик
// отправки формы вместо пары глобальных флагов "редактируем ли" и "какой ID".
type FormMode struct {
	editID string
}

// CreateMode возвращает режим создания новой подписки.
func CreateMode() FormMode {
	return FormMode{}
}

// EditMode возвращает режим редактирования подписки с данным ID.
func EditMode(id string) FormMode {
	return FormMode{editID: id}
}

// IsEdit сообщает, находится ли форма в режиме редактирования.
func (m FormMode) IsEdit() bool {
	return m.editID != ""
}

// EditID возвращает ID редактируемой подписки и признак режима редактирования.
func (m FormMode) EditID() (string, bool) {
	return m.editID, m.editID != ""
}
