package components

// NameComponent 调试用实体名称
type NameComponent struct {
	Name string
}
