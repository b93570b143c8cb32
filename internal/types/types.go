// internal/types/types.go
package types

// EntityID — идентификатор сущности. Используется и как ссылка на агента-вора.
type EntityID uint64
