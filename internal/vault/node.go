// Package vault описывает целевую модель хранилища в стиле KeePass:
// дерево групп и записей с полями и вложениями.
package vault

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DefaultRootGroupName - заголовок эффективного корня пустого хранилища.
const DefaultRootGroupName = "Database"

var (
	// ErrNotAGroup возвращается при попытке добавить потомка к записи.
	ErrNotAGroup = errors.New("node is not a group")
	// ErrInvalidGroupTitle возвращается для пустого заголовка группы.
	ErrInvalidGroupTitle = errors.New("invalid group title")
	// ErrAlreadyAttached возвращается, если у узла уже есть родитель.
	ErrAlreadyAttached = errors.New("node already has a parent")
)

// Kind - вид узла дерева.
type Kind int

const (
	KindGroup Kind = iota
	KindEntry
)

func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "entry"
}

// Node - элемент дерева хранилища: группа или запись.
// Группа владеет упорядоченным списком потомков, запись - набором полей.
type Node struct {
	ID       uuid.UUID
	Kind     Kind
	Title    string
	Icon     Icon
	Fields   Fields
	Children []*Node

	parent *Node
}

// NewRootWithDefaultEffectiveRootGroup создаёт синтетический корень
// с единственной группой "Database" - форма пустого KeePass-хранилища.
func NewRootWithDefaultEffectiveRootGroup() *Node {
	root := &Node{ID: uuid.New(), Kind: KindGroup}
	effective := &Node{ID: uuid.New(), Kind: KindGroup, Title: DefaultRootGroupName, Icon: IconFolder}
	_ = root.AddChild(effective)
	return root
}

// NewGroup создаёт отсоединённую группу. Заголовок проверяется по правилам KeePass.
func NewGroup(title string) (*Node, error) {
	if !validGroupTitle(title) {
		return nil, ErrInvalidGroupTitle
	}
	return &Node{ID: uuid.New(), Kind: KindGroup, Title: title, Icon: IconFolder}, nil
}

// NewEntry создаёт отсоединённую запись с пустым набором полей.
func NewEntry(title string) *Node {
	return &Node{
		ID:    uuid.New(),
		Kind:  KindEntry,
		Title: title,
		Icon:  IconKey,
		Fields: Fields{
			Attachments: map[string]*DatabaseAttachment{},
		},
	}
}

func validGroupTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// IsGroup сообщает, является ли узел группой.
func (n *Node) IsGroup() bool { return n.Kind == KindGroup }

// Parent возвращает родительский узел (nil для корня и отсоединённых узлов).
func (n *Node) Parent() *Node { return n.parent }

// AddChild добавляет child в конец списка потомков группы n.
func (n *Node) AddChild(child *Node) error {
	if !n.IsGroup() {
		return ErrNotAGroup
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	if child.IsGroup() && !validGroupTitle(child.Title) {
		return ErrInvalidGroupTitle
	}
	child.parent = n
	n.Children = append(n.Children, child)
	return nil
}

// ChildGroups возвращает дочерние группы в порядке добавления.
func (n *Node) ChildGroups() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.IsGroup() {
			res = append(res, c)
		}
	}
	return res
}

// ChildEntries возвращает дочерние записи в порядке добавления.
func (n *Node) ChildEntries() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if !c.IsGroup() {
			res = append(res, c)
		}
	}
	return res
}

// Walk обходит поддерево в прямом порядке, начиная с самого n.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count возвращает число групп и записей под n (сам n не учитывается).
func (n *Node) Count() (groups, entries int) {
	n.Walk(func(x *Node) {
		if x == n {
			return
		}
		if x.IsGroup() {
			groups++
		} else {
			entries++
		}
	})
	return groups, entries
}

// EffectiveRoot возвращает первую дочернюю группу корня, либо сам корень.
func (n *Node) EffectiveRoot() *Node {
	if groups := n.ChildGroups(); len(groups) > 0 {
		return groups[0]
	}
	return n
}
