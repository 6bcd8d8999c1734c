package model

// MindMapNode 思维导图节点
type MindMapNode struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
}

// MindMapConnection 节点之间的连线
type MindMapConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MindMapDocument 画布导出的完整文档
type MindMapDocument struct {
	Nodes       []MindMapNode       `json:"nodes"`
	Connections []MindMapConnection `json:"connections"`
}
