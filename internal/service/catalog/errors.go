package catalog

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог не удалось прочитать из хранилища
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrServiceNotFound возвращается, когда услуга не найдена среди активных
	ErrServiceNotFound = errors.New("service not found")

	// ErrProviderNotFound возвращается, когда барбер не найден среди активных
	ErrProviderNotFound = errors.New("barber not found")
)
