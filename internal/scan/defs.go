package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Definition kinds.
const (
	KindFunction = "function"
	KindClass    = "class"
	KindMethod   = "method"
	KindVariable = "variable"
	KindProperty = "property"
	KindLine     = "line"
)

// languageFor picks a tree-sitter grammar by extension; nil means unsupported.
func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	}
	return nil
}

// SupportsSyntax reports whether FindDefinitions parses path with tree-sitter.
func SupportsSyntax(path string) bool { return languageFor(path) != nil }

// FindDefinitions locates where name is defined in the file at path.
// JavaScript and TypeScript sources are parsed; other files, or heuristic
// mode, fall back to FindDefinitionLines.
func FindDefinitions(ctx context.Context, path, name string, heuristic bool) ([]Match, error) {
	if name == "" {
		return nil, fmt.Errorf("definition name is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lang := languageFor(path)
	if heuristic || lang == nil {
		return FindDefinitionLines(string(content), name), nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	lines := strings.Split(string(content), "\n")
	var out []Match
	walkDefinitions(tree.RootNode(), content, func(n *sitter.Node, ident, kind string) {
		if ident != name {
			return
		}
		row := int(n.StartPoint().Row)
		text := ""
		if row < len(lines) {
			text = strings.TrimSpace(lines[row])
		}
		out = append(out, Match{Line: row + 1, Text: text, Kind: kind})
	})
	return out, nil
}

// walkDefinitions visits every named declaration below node.
func walkDefinitions(node *sitter.Node, content []byte, visit func(n *sitter.Node, name, kind string)) {
	getText := func(n *sitter.Node) string {
		return string(content[n.StartByte():n.EndByte()])
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "function_declaration", "generator_function_declaration":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				visit(child, getText(nameNode), KindFunction)
			}
		case "class_declaration":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				visit(child, getText(nameNode), KindClass)
			}
		case "method_definition":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				visit(child, getText(nameNode), KindMethod)
			}
		case "variable_declarator":
			nameNode := child.ChildByFieldName("name")
			valueNode := child.ChildByFieldName("value")
			if nameNode != nil && valueNode != nil && isFunctionValue(valueNode) {
				visit(child, getText(nameNode), KindVariable)
			}
		case "pair":
			keyNode := child.ChildByFieldName("key")
			valueNode := child.ChildByFieldName("value")
			if keyNode != nil && valueNode != nil && isFunctionValue(valueNode) {
				visit(child, strings.Trim(getText(keyNode), `"'`), KindProperty)
			}
		}
		walkDefinitions(child, content, visit)
	}
}

func isFunctionValue(n *sitter.Node) bool {
	switch n.Type() {
	case "arrow_function", "function", "function_expression", "generator_function":
		return true
	case "call_expression":
		// useCallback(() => ..., deps) and similar wrappers
		args := n.ChildByFieldName("arguments")
		if args == nil || args.NamedChildCount() == 0 {
			return false
		}
		return isFunctionValue(args.NamedChild(0))
	}
	return false
}

// FindDefinitionLines is the plain-text fallback: a line defines name when it
// mentions name together with "const", "function" or "=".
func FindDefinitionLines(content, name string) []Match {
	var out []Match
	for i, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, name) {
			continue
		}
		if strings.Contains(line, "const") || strings.Contains(line, "function") || strings.Contains(line, "=") {
			out = append(out, Match{Line: i + 1, Text: strings.TrimSpace(line), Kind: KindLine})
		}
	}
	return out
}
