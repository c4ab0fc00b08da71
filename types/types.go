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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = Unit{}
	_ Type = (*Var)(nil)
	_ Type = (*EVar)(nil)
	_ Type = (*Arr)(nil)
	_ Type = (*All)(nil)
)

// The unit type, with a single inhabitant: `()`
type Unit struct{}

// Rigid type variable: `a`
//
// A rigid variable is never solved; it is only checked for scope membership
// against the context.
type Var struct {
	Name string
}

// Existential type variable: `'a`
//
// An existential stands for an unknown monotype. It is declared once in the
// context and later either left unsolved or solved exactly once.
type EVar struct {
	Name string
}

// Function type: `A -> B`
//
// The argument position is contravariant, the return position covariant.
type Arr struct {
	Arg    Type
	Return Type
}

// Universal quantification: `forall a. A`
type All struct {
	Var  string
	Body Type
}

func (Unit) TypeName() string  { return "Unit" }
func (*Var) TypeName() string  { return "Var" }
func (*EVar) TypeName() string { return "EVar" }
func (*Arr) TypeName() string  { return "Arr" }
func (*All) TypeName() string  { return "All" }

// IsMono reports whether t is a monotype, i.e. contains no quantifier.
// Existentials may only ever be solved to monotypes.
func IsMono(t Type) bool {
	switch t := t.(type) {
	case Unit:
		return true
	case *Var:
		return true
	case *EVar:
		return true
	case *Arr:
		return IsMono(t.Arg) && IsMono(t.Return)
	case *All:
		return false
	}
	panic("unexpected type " + t.TypeName())
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case Unit:
		_, ok := b.(Unit)
		return ok
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *EVar:
		b, ok := b.(*EVar)
		return ok && a.Name == b.Name
	case *Arr:
		b, ok := b.(*Arr)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	case *All:
		b, ok := b.(*All)
		return ok && a.Var == b.Var && Equal(a.Body, b.Body)
	}
	panic("unexpected type " + a.TypeName())
}

// Occurs reports whether the existential name occurs anywhere within t.
func Occurs(name string, t Type) bool {
	switch t := t.(type) {
	case Unit:
		return false
	case *Var:
		return false
	case *EVar:
		return t.Name == name
	case *Arr:
		return Occurs(name, t.Arg) || Occurs(name, t.Return)
	case *All:
		return Occurs(name, t.Body)
	}
	panic("unexpected type " + t.TypeName())
}
