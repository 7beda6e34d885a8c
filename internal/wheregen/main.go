// Command wheregen writes the AVX2 kernels of package compare: one assembly
// function per (compare operator, boolean operator, signing) combination,
// their Go declarations and the table the dispatcher indexes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"
)

type compareOp struct {
	Name    string
	Compare string // macro producing the lane masks
	Negate  bool
}

type booleanOp struct {
	Name  string
	Store string
}

type signing struct {
	Name string
}

// Order matches the constants of package compare.
var (
	compareOps = []compareOp{
		{"Equals", "CMP_EQUAL", false},
		{"NotEquals", "CMP_EQUAL", true},
		{"LessThan", "CMP_LESS", false},
		{"LessThanOrEqual", "CMP_GREATER", true},
		{"GreaterThan", "CMP_GREATER", false},
		{"GreaterThanOrEqual", "CMP_LESS", true},
	}
	booleanOps = []booleanOp{
		{"Set", "MOVQ AX, (DI)"},
		{"And", "ANDQ AX, (DI)"},
		{"Or", "ORQ  AX, (DI)"},
	}
	signings = []signing{
		{"Signed"},
		{"Unsigned"},
	}
)

type kernel struct {
	compareOp
	Boolean booleanOp
	Sign    signing
}

func (k kernel) Func() string {
	return "where" + k.compareOp.Name + k.Boolean.Name + k.Sign.Name + "AVX2"
}

func (k kernel) Unsigned() bool {
	return k.Sign.Name == "Unsigned"
}

type group struct {
	Sign    signing
	Boolean []booleanGroup
}

type booleanGroup struct {
	Boolean booleanOp
	Kernels []kernel
}

func main() {
	out := flag.String("o", ".", "output directory")
	flag.Parse()

	var kernels []kernel
	var groups []group
	for _, s := range signings {
		g := group{Sign: s}
		for _, b := range booleanOps {
			bg := booleanGroup{Boolean: b}
			for _, c := range compareOps {
				k := kernel{compareOp: c, Boolean: b, Sign: s}
				kernels = append(kernels, k)
				bg.Kernels = append(bg.Kernels, k)
			}
			g.Boolean = append(g.Boolean, bg)
		}
		groups = append(groups, g)
	}

	var asm bytes.Buffer
	if err := asmTemplate.Execute(&asm, kernels); err != nil {
		log.Fatalf("asm template: %v", err)
	}
	write(filepath.Join(*out, "where_avx2_amd64.s"), asm.Bytes())

	var src bytes.Buffer
	if err := goTemplate.Execute(&src, struct {
		Kernels []kernel
		Groups  []group
	}{kernels, groups}); err != nil {
		log.Fatalf("go template: %v", err)
	}
	formatted, err := format.Source(src.Bytes())
	if err != nil {
		log.Fatalf("format: %v\n%s", err, src.Bytes())
	}
	write(filepath.Join(*out, "where_avx2_amd64.go"), formatted)
}

func write(path string, b []byte) {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", path)
}

var asmTemplate = template.Must(template.New("asm").Parse(`// Code generated by wheregen. DO NOT EDIT.

//go:build !noasm && amd64

#include "textflag.h"

// SI     next block of the element array
// DI     next match vector word
// CX     blocks remaining
// Y0     broadcast value
// Y1     sign bit in every byte (unsigned kernels)
// Y2-Y3  the two 32-byte lanes of a block
// Y4-Y5  lane masks, 0xFF where the lane matched
// AX     merged 64-bit block result

#define PROLOGUE_SIGNED \
	MOVQ         set+0(FP), SI;          \
	MOVQ         blocks+8(FP), CX;       \
	MOVQ         matchVector+16(FP), DI; \
	MOVBLZX      value+24(FP), AX;       \
	MOVQ         AX, X0;                 \
	VPBROADCASTB X0, Y0

// VPCMPGTB is a signed compare, so unsigned input is biased by flipping the
// sign bit of the value once and of every lane as it is loaded.
#define PROLOGUE_UNSIGNED \
	MOVQ         set+0(FP), SI;          \
	MOVQ         blocks+8(FP), CX;       \
	MOVQ         matchVector+16(FP), DI; \
	MOVBLZX      value+24(FP), AX;       \
	MOVQ         AX, X0;                 \
	VPBROADCASTB X0, Y0;                 \
	MOVL         $0x80, BX;              \
	MOVQ         BX, X1;                 \
	VPBROADCASTB X1, Y1;                 \
	VPXOR        Y1, Y0, Y0

#define LOAD_SIGNED \
	VMOVDQU (SI), Y2; \
	VMOVDQU 32(SI), Y3

#define LOAD_UNSIGNED \
	VMOVDQU (SI), Y2;   \
	VMOVDQU 32(SI), Y3; \
	VPXOR   Y1, Y2, Y2; \
	VPXOR   Y1, Y3, Y3

// lane > value
#define CMP_GREATER \
	VPCMPGTB Y0, Y2, Y4; \
	VPCMPGTB Y0, Y3, Y5

// value > lane
#define CMP_LESS \
	VPCMPGTB Y2, Y0, Y4; \
	VPCMPGTB Y3, Y0, Y5

#define CMP_EQUAL \
	VPCMPEQB Y0, Y2, Y4; \
	VPCMPEQB Y0, Y3, Y5

// One bit per byte, the second lane in the high half.
#define MERGE \
	VPMOVMSKB Y4, AX; \
	VPMOVMSKB Y5, BX; \
	SHLQ      $32, BX; \
	ORQ       BX, AX

#define ADVANCE \
	ADDQ $64, SI; \
	ADDQ $8, DI;  \
	DECQ CX
{{range .}}
// func {{.Func}}(set *byte, blocks int, matchVector *uint64, value byte)
TEXT ·{{.Func}}(SB), NOSPLIT, $0-25
{{- if .Unsigned}}
	PROLOGUE_UNSIGNED
{{- else}}
	PROLOGUE_SIGNED
{{- end}}
	TESTQ CX, CX
	JZ    done

loop:
{{- if .Unsigned}}
	LOAD_UNSIGNED
{{- else}}
	LOAD_SIGNED
{{- end}}
	{{.Compare}}
	MERGE
{{- if .Negate}}
	NOTQ AX
{{- end}}
	{{.Boolean.Store}}
	ADVANCE
	JNZ  loop

done:
	VZEROUPPER
	RET
{{end}}`))

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by wheregen. DO NOT EDIT.

//go:build !noasm && amd64

package compare

type kernelAVX2 func(set *byte, blocks int, matchVector *uint64, value byte)

var avx2Kernels = [signingCount][booleanOperatorCount][compareOperatorCount]kernelAVX2{
{{- range .Groups}}
	{{.Sign.Name}}: {
	{{- range .Boolean}}
		{{.Boolean.Name}}: {
		{{- range .Kernels}}
			{{.Name}}: {{.Func}},
		{{- end}}
		},
	{{- end}}
	},
{{- end}}
}
{{range .Kernels}}
//go:noescape
func {{.Func}}(set *byte, blocks int, matchVector *uint64, value byte)
{{end}}`))
