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

// Subst replaces free occurrences of the rigid variable name in t with rep.
// An inner quantifier binding the same name shadows it.
func Subst(t Type, name string, rep Type) Type {
	switch t := t.(type) {
	case Unit:
		return t
	case *Var:
		if t.Name == name {
			return rep
		}
		return t
	case *EVar:
		return t
	case *Arr:
		return &Arr{Arg: Subst(t.Arg, name, rep), Return: Subst(t.Return, name, rep)}
	case *All:
		if t.Var == name {
			return t
		}
		return &All{Var: t.Var, Body: Subst(t.Body, name, rep)}
	}
	panic("unexpected type " + t.TypeName())
}
