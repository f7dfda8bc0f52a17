package inspect

// Node represents a UI component in the inspection tree.
type Node struct {
	// Type is the component type, e.g. "Carousel", "Pagination" or "Menu".
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`

	Bounds  Bounds `json:"bounds"`
	Visible bool   `json:"visible"`

	// State contains component-specific state information.
	State  map[string]any `json:"state,omitempty"`
	Styles *StyleInfo     `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the text shown by leaf components such as the status bar.
	Content   string          `json:"content,omitempty"`
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds is a component's position and size in cells.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo contains styling information for a component.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	// Padding is [top, right, bottom, left].
	Padding []int `json:"padding,omitempty"`

	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo records text that was cut to fit.
type TruncationInfo struct {
	OriginalLength int  `json:"original_length"`
	DisplayLength  int  `json:"display_length"`
	Ellipsis       bool `json:"ellipsis"`
}

// NewNode creates a new Node with the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]any),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithTruncation records that text of original cells was shown in
// displayed cells.
func (n *Node) WithTruncation(original, displayed int, hasEllipsis bool) *Node {
	if displayed >= original {
		return n
	}
	n.Truncated = &TruncationInfo{
		OriginalLength: original,
		DisplayLength:  displayed,
		Ellipsis:       hasEllipsis,
	}
	return n
}

// Find returns the first node of the given type in a depth-first walk.
func (n *Node) Find(nodeType string) *Node {
	if n == nil {
		return nil
	}
	if n.Type == nodeType {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(nodeType); found != nil {
			return found
		}
	}
	return nil
}
