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

package types

import (
	"strings"
)

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, false, t)
	return sb.String()
}

// simple indicates the type occupies a position where arrows and
// quantifiers must be parenthesized.
func typeString(sb *strings.Builder, simple bool, t Type) {
	switch t := t.(type) {
	case Unit:
		sb.WriteString("()")
	case *Var:
		sb.WriteString(t.Name)
	case *EVar:
		sb.WriteByte('\'')
		sb.WriteString(t.Name)
	case *Arr:
		if simple {
			sb.WriteByte('(')
		}
		typeString(sb, true, t.Arg)
		sb.WriteString(" -> ")
		typeString(sb, false, t.Return)
		if simple {
			sb.WriteByte(')')
		}
	case *All:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("forall ")
		sb.WriteString(t.Var)
		sb.WriteString(". ")
		typeString(sb, false, t.Body)
		if simple {
			sb.WriteByte(')')
		}
	default:
		panic("unexpected type " + t.TypeName())
	}
}

// MemberString returns a string representation of a ContextMember.
func MemberString(m ContextMember) string {
	switch m := m.(type) {
	case *CtxVar:
		return m.Name
	case *CtxAssump:
		return m.Name + " : " + TypeString(m.Type)
	case *CtxEVar:
		return "'" + m.Name
	case *CtxSolved:
		return "'" + m.Name + " = " + TypeString(m.Type)
	case *CtxMarker:
		return ">'" + m.Name
	}
	panic("unexpected context member " + m.MemberName())
}

// ContextString returns a string representation of a Context.
func ContextString(c Context) string {
	var sb strings.Builder
	sb.WriteByte('[')
	c.Range(func(i int, m ContextMember) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(MemberString(m))
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
