package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/fxresolve/internal/ast"
	"github.com/funvibe/fxresolve/internal/typesystem"
)

// --- Code Printer (Output looks like source code) ---

type CodePrinter struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int // max line width (0 = unlimited)
	column    int // current column position

	// typeOf maps every member type before it is printed.
	typeOf func(typesystem.Type) typesystem.Type
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{indent: 0, lineWidth: 100, column: 0}
}

func NewCodePrinterWithWidth(width int) *CodePrinter {
	return &CodePrinter{indent: 0, lineWidth: width, column: 0}
}

// NewPublishedPrinter prints member types as they are published outside
// their declaring module.
func NewPublishedPrinter() *CodePrinter {
	p := NewCodePrinter()
	p.typeOf = typesystem.Publish
	return p
}

func (p *CodePrinter) SetLineWidth(width int) {
	p.lineWidth = width
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	// Track column position
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

func (p *CodePrinter) writeType(t typesystem.Type) {
	if t == nil {
		p.write("<???>")
		return
	}
	if p.typeOf != nil {
		t = p.typeOf(t)
	}
	p.write(t.String())
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	p.write("module " + n.Module)
	p.writeln()
	for _, c := range n.Classes {
		p.writeln()
		if c != nil {
			c.Accept(p)
		} else {
			p.write("<???>")
			p.writeln()
		}
	}
}

func (p *CodePrinter) VisitClassDeclaration(n *ast.ClassDeclaration) {
	p.writeIndent()
	p.write(n.Kind.String())
	if n.IsRegular() {
		p.write(" " + n.Name)
	}
	if len(n.TypeParams) > 0 {
		p.write("<" + strings.Join(n.TypeParams, ", ") + ">")
	}
	if len(n.Members) == 0 {
		p.write(" {}")
		p.writeln()
		return
	}

	p.write(" {")
	p.writeln()
	p.indent++
	for _, m := range n.Members {
		if _, nested := m.(*ast.ClassDeclaration); nested {
			m.Accept(p)
			continue
		}
		p.writeIndent()
		m.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	p.writeln()
}

func (p *CodePrinter) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	p.write("fun " + n.Name)
	p.writeParams(n.Params)
	p.write(": ")
	p.writeType(n.ReturnType)
}

func (p *CodePrinter) VisitConstructorDeclaration(n *ast.ConstructorDeclaration) {
	p.write("constructor")
	p.writeParams(n.Params)
}

func (p *CodePrinter) VisitPropertyDeclaration(n *ast.PropertyDeclaration) {
	if n.Kind == ast.PropertyKindEnumEntry {
		p.write(n.Name)
		return
	}
	if n.Kind == ast.PropertyKindField {
		p.write("field ")
	}
	if n.Mutable {
		p.write("var ")
	} else {
		p.write("val ")
	}
	p.write(n.Name + ": ")
	p.writeType(n.Type)
}

func (p *CodePrinter) writeParams(params []ast.Parameter) {
	p.write("(")
	start := p.buf.Len()
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Name + ": ")
		p.writeType(param.Type)
	}
	// Break long parameter lists one per line.
	if p.lineWidth > 0 && p.column+1 > p.lineWidth && len(params) > 1 {
		p.buf.Truncate(start)
		p.indent++
		for _, param := range params {
			p.writeln()
			p.writeIndent()
			p.write(param.Name + ": ")
			p.writeType(param.Type)
			p.write(",")
		}
		p.indent--
		p.writeln()
		p.writeIndent()
	}
	p.write(")")
}

// Print renders a node with a fresh printer.
func Print(n ast.Node) string {
	p := NewCodePrinter()
	n.Accept(p)
	return p.String()
}
