package file

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gipersonic/miet/pkg/domain"
)

// ParseTree builds a catalog tree from YAML. Mappings become interior
// nodes with children in document order, scalars become indirection
// tokens dereferenced at resolution time, and empty values become empty
// leaves. Decoding through yaml.Node instead of a map keeps the author's
// ordering, which plain map decoding would destroy.
func ParseTree(data []byte) (*domain.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		// An empty document is an empty catalog.
		return domain.Interior(), nil
	}
	return buildNode(doc.Content[0])
}

func buildNode(n *yaml.Node) (*domain.Node, error) {
	switch n.Kind {
	case yaml.MappingNode:
		children := make([]domain.Child, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := buildNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			children = append(children, domain.Child{
				Label: n.Content[i].Value,
				Node:  child,
			})
		}
		return domain.Interior(children...), nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return domain.Leaf(""), nil
		}
		return domain.Indirection(n.Value), nil
	case yaml.AliasNode:
		return buildNode(n.Alias)
	default:
		return nil, fmt.Errorf("unsupported catalog node at line %d", n.Line)
	}
}
