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

// bidi provides the algorithmic subtyping core of a bidirectional
// type-checker for a small higher-rank polymorphic calculus.
//
// The algorithm decides subtyping over an explicit ordered context which
// tracks scope declarations, typing assumptions, and existential type
// variables together with their eventual monotype solutions. Solutions are
// discovered by in-place context surgery (splitting the context at a
// declaration and replacing the slot), never by mutable links, and
// quantifier scopes are discarded by truncating the context back to a
// marker.
//
// The expression-level checking and synthesis judgments, along with any
// parser or printer for concrete syntax, are left to the caller.
//
// Links:
//
// * Complete and Easy Bidirectional Typechecking for Higher-Rank Polymorphism (Dunfield & Krishnaswami, 2013): https://arxiv.org/abs/1306.6032
//
// * Bidirectional Typing (Dunfield & Krishnaswami, survey): https://arxiv.org/abs/1908.05839
package bidi
