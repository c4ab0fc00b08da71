// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

import (
	"strings"

	"github.com/wdamron/bidi/types"
)

// ExprString returns a string representation of an Expr.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// simple indicates the expression occupies a position where annotations,
// abstractions and applications must be parenthesized.
func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch e := e.(type) {
	case Unit:
		sb.WriteString("()")
	case *Var:
		sb.WriteString(e.Name)
	case *Ann:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, e.Expr)
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(e.Type))
		if simple {
			sb.WriteByte(')')
		}
	case *Lam:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('\\')
		sb.WriteString(e.Arg)
		sb.WriteString(" -> ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}
	case *App:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, e.Func)
		sb.WriteByte(' ')
		exprString(sb, true, e.Arg)
		if simple {
			sb.WriteByte(')')
		}
	default:
		panic("unexpected expression " + e.ExprName())
	}
}
