/*
 * fwrite - Offline generator for format/floattables.go.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Command gentables regenerates format/floattables.go. It is not part of
// the shipped module: the float formatter only ever reads the literal
// arrays this tool writes, never math/big itself. Run it by hand (or via
// `go generate ./format`) whenever the table layout changes; its output
// is committed, not computed at program startup.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
)

const tablePrecision = 200

func main() {
	out := flag.String("out", "floattables.go", "output file")
	flag.Parse()

	sigparts := genSigParts()
	expsig, exppow := genExpTables()

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("var sigparts = [53]float64{\n")
	writeFloats(&buf, sigparts, 6)
	buf.WriteString("}\n\n")

	buf.WriteString(expsigDoc)
	buf.WriteString("var expsig = [2048]float64{\n")
	writeFloats(&buf, expsig, 6)
	buf.WriteString("}\n\n")

	buf.WriteString("var exppow = [2048]int{\n")
	writeInts(&buf, exppow, 12)
	buf.WriteString("}\n")

	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}

// genSigParts returns 2^-i for i in [0,52]; every value is an exact binary
// fraction, so plain float64 division is exact.
func genSigParts() []float64 {
	vals := make([]float64, 53)
	v := 1.0
	for i := 1; i <= 52; i++ {
		v /= 2
		vals[i] = v
	}
	return vals
}

// genExpTables normalizes 2^(e-1023) into significand*10^exponent using
// big.Float at tablePrecision bits, for every biased exponent e.
func genExpTables() ([]float64, []int) {
	expsig := make([]float64, 2048)
	exppow := make([]int, 2048)

	ten := new(big.Float).SetPrec(tablePrecision).SetInt64(10)
	one := new(big.Float).SetPrec(tablePrecision).SetInt64(1)
	for e := 0; e < 2048; e++ {
		exp := e - 1023
		v := bigPow2(exp)

		pw := 0
		for v.Cmp(ten) >= 0 {
			v.Quo(v, ten)
			pw++
		}
		for v.Cmp(one) < 0 {
			v.Mul(v, ten)
			pw--
		}

		sig, _ := v.Float64()
		expsig[e] = sig
		exppow[e] = pw
	}
	return expsig, exppow
}

// bigPow2 returns 2^exp as a big.Float at tablePrecision bits.
func bigPow2(exp int) *big.Float {
	v := new(big.Float).SetPrec(tablePrecision).SetInt64(1)
	two := new(big.Float).SetPrec(tablePrecision).SetInt64(2)
	if exp >= 0 {
		for i := 0; i < exp; i++ {
			v.Mul(v, two)
		}
		return v
	}
	for i := 0; i < -exp; i++ {
		v.Quo(v, two)
	}
	return v
}

func writeFloats(buf *bytes.Buffer, vals []float64, perLine int) {
	for i, v := range vals {
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		buf.WriteByte(',')
		if (i+1)%perLine == 0 {
			buf.WriteByte('\n')
		}
	}
	if len(vals)%perLine != 0 {
		buf.WriteByte('\n')
	}
}

func writeInts(buf *bytes.Buffer, vals []int, perLine int) {
	for i, v := range vals {
		fmt.Fprintf(buf, "%d,", v)
		if (i+1)%perLine == 0 {
			buf.WriteByte('\n')
		}
	}
	if len(vals)%perLine != 0 {
		buf.WriteByte('\n')
	}
}

const header = `/*
 * fwrite - Precomputed exponent/significand tables for the float formatter.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Code generated by tools/gentables; DO NOT EDIT.
//go:generate go run ../tools/gentables -out floattables.go

package format

// sigparts[i] = 2^-i, sigparts[0] = 0 so the mantissa-reconstruction loop
// in floatfmt.go can add unconditionally on every set bit.
`

const expsigDoc = `// expsig[e] and exppow[e] give the decimal significand (in [1,10)) and
// base-10 exponent of 2^(e-1023), for every biased exponent e in [0,2047].
// Index 0 (subnormals) and 2047 (inf/nan) are populated but unused by the
// turbo path, which routes those cases elsewhere before consulting the
// table.
//
// Generated offline by tools/gentables (arbitrary-precision decimal
// arithmetic) and committed as literal data; the shipped package pays no
// runtime cost and carries no math/big dependency to produce them.
`
