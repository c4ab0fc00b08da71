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
	"github.com/wdamron/bidi/types"
)

// Expr is the base for all expressions.
//
// Terms are not consumed by the subtyping core beyond context assumptions
// being indexed by term-variable names; the grammar is the companion of the
// type grammar for the checking layer built on top.
type Expr interface {
	ExprName() string
}

var (
	_ Expr = Unit{}
	_ Expr = (*Var)(nil)
	_ Expr = (*Ann)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*App)(nil)
)

// The unit value: `()`
type Unit struct{}

// Variable
type Var struct {
	Name string
}

// Type annotation: `e : A`
type Ann struct {
	Expr Expr
	Type types.Type
}

// Abstraction: `\x -> e`
type Lam struct {
	Arg  string
	Body Expr
}

// Application: `f x`
type App struct {
	Func Expr
	Arg  Expr
}

func (Unit) ExprName() string { return "Unit" }
func (*Var) ExprName() string { return "Var" }
func (*Ann) ExprName() string { return "Ann" }
func (*Lam) ExprName() string { return "Lam" }
func (*App) ExprName() string { return "App" }
