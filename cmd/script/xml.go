package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/midbel/script"
	"github.com/midbel/script/codecs/xml"
)

func writeXML(w io.Writer, root *script.Script, compact bool) error {
	doc := xml.NewDocument(scriptElement(root))
	wrt := xml.NewWriter(w)
	wrt.Compact = compact
	return wrt.Write(doc)
}

func scriptElement(root *script.Script) *xml.Element {
	el := xml.NewElement("script")
	for _, st := range root.Statements {
		el.Append(statementElement(st))
	}
	return el
}

func statementElement(st script.Statement) xml.Node {
	switch st := st.(type) {
	case script.ExprStatement:
		el := xml.NewElement("expr")
		if st.Name != "" {
			el.SetAttribute(xml.NewAttribute("name", string(st.Name)))
		}
		el.Append(exprElement(st.Expr))
		return el
	case script.FunctionStatement:
		el := xml.NewElement("function")
		el.SetAttribute(xml.NewAttribute("name", string(st.Name)))
		if st.Async {
			el.SetAttribute(xml.NewAttribute("async", "true"))
		}
		for _, a := range st.Args {
			arg := xml.NewElement("arg")
			arg.SetAttribute(xml.NewAttribute("name", string(a)))
			el.Append(arg)
		}
		for _, s := range st.Statements {
			el.Append(statementElement(s))
		}
		return el
	case script.LabelStatement:
		el := xml.NewElement("label")
		el.SetAttribute(xml.NewAttribute("name", string(st.Name)))
		return el
	case *script.JumpStatement:
		return jumpElement(*st)
	case script.JumpStatement:
		return jumpElement(st)
	case script.ReturnStatement:
		el := xml.NewElement("return")
		if st.Expr != nil {
			el.Append(exprElement(st.Expr))
		}
		return el
	case script.IncludeStatement:
		el := xml.NewElement("include")
		el.SetAttribute(xml.NewAttribute("url", st.URL))
		return el
	default:
		return xml.NewComment(fmt.Sprintf("unknown statement %T", st))
	}
}

func jumpElement(st script.JumpStatement) *xml.Element {
	el := xml.NewElement("jump")
	el.SetAttribute(xml.NewAttribute("label", string(st.Label)))
	if st.Expr != nil {
		el.Append(exprElement(st.Expr))
	}
	return el
}

func exprElement(e script.Expression) xml.Node {
	switch e := e.(type) {
	case script.NumberExpr:
		el := xml.NewElement("number")
		el.SetAttribute(xml.NewAttribute("value", strconv.FormatFloat(e.Value, 'g', -1, 64)))
		return el
	case script.StringExpr:
		el := xml.NewElement("string")
		el.Append(xml.NewText(e.Value))
		return el
	case script.VariableExpr:
		el := xml.NewElement("variable")
		el.SetAttribute(xml.NewAttribute("name", string(e.Name)))
		return el
	case script.GroupExpr:
		el := xml.NewElement("group")
		el.Append(exprElement(e.Expr))
		return el
	case script.UnaryExpr:
		el := xml.NewElement("unary")
		el.SetAttribute(xml.NewAttribute("op", string(e.Op)))
		el.Append(exprElement(e.Expr))
		return el
	case script.BinaryExpr:
		el := xml.NewElement("binary")
		el.SetAttribute(xml.NewAttribute("op", string(e.Op)))
		el.Append(exprElement(e.Left))
		el.Append(exprElement(e.Right))
		return el
	case script.CallExpr:
		el := xml.NewElement("call")
		el.SetAttribute(xml.NewAttribute("name", string(e.Name)))
		for _, a := range e.Args {
			el.Append(exprElement(a))
		}
		return el
	default:
		return xml.NewComment(fmt.Sprintf("unknown expression %T", e))
	}
}
