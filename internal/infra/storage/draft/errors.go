package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда сессия не найдена или истекла
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("draft.repository: failed to encode draft")

	// ErrDecode возвращается при ошибке десериализации сессии
	ErrDecode = errors.New("draft.repository: failed to decode draft")

	// ErrStore возвращается при ошибке хранилища сессий
	ErrStore = errors.New("draft.repository: store error")
)
