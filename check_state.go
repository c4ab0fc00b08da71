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

package bidi

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wdamron/bidi/types"
)

// CheckState carries the typing context and fresh-name counter for one
// top-level checking session.
//
// States are threaded by value: each call to Subtype consumes a state and
// returns the extended state on success. The context inside is persistent,
// so a failed branch's extensions are never observable through the caller's
// copy. A state must not be shared across unrelated sessions; the counter
// is what guarantees every declared name is unique within one session.
type CheckState struct {
	Context types.Context

	next   int
	tracer *tracer
}

// NewCheckState returns a state with an empty context and the name counter
// at zero.
func NewCheckState() CheckState {
	return CheckState{Context: types.NewContext()}
}

// FreshEVar returns the next globally-unique existential name from the
// session counter.
func (st *CheckState) FreshEVar() string {
	name := "e" + strconv.Itoa(st.next)
	st.next++
	return name
}

// FreshVar returns the next globally-unique rigid name from the session
// counter. Rigid and existential names draw from the same counter, so one
// session never issues the same number twice.
func (st *CheckState) FreshVar() string {
	name := "a" + strconv.Itoa(st.next)
	st.next++
	return name
}

// EnableTrace directs a log of rule applications to w.
func (st *CheckState) EnableTrace(w io.Writer) {
	st.tracer = &tracer{out: w}
}

// The tracer is shared by all copies of a threaded state: indentation
// follows the call stack, not the value being threaded.
type tracer struct {
	out    io.Writer
	indent string
}

func (st CheckState) log(f string, vs ...interface{}) {
	t := st.tracer
	if t == nil {
		return
	}
	fmt.Fprint(t.out, t.indent)
	fmt.Fprintf(t.out, f, vs...)
	fmt.Fprintln(t.out)
}

func (st CheckState) tr(f string, vs ...interface{}) func() {
	t := st.tracer
	if t == nil {
		return func() {}
	}
	st.log(f, vs...)
	olddent := t.indent
	t.indent += "---"
	return func() { t.indent = olddent }
}
