package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/uniglsl/binding"
	"github.com/gogpu/uniglsl/glsl"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// printError prints err with a colored tag. Parse errors get the offending
// source line and a caret.
func printError(tag string, err error) {
	errorStyleBG.Print(tag)

	var perr *glsl.ParseError
	if errors.As(err, &perr) {
		errorColorFG.Println(" " + err.Error())
		fmt.Println(perr.FormatWithContext())
		return
	}
	errorColorFG.Println(" " + err.Error())
}

func printSuccess(tag, msg string) {
	successStyleBG.Print(tag)
	successColorFG.Println(" " + msg)
}

// printBanner prints a dashed header sized to the terminal.
func printBanner(title string) {
	width := pterm.GetTerminalWidth() / 2
	if width > 50 {
		width = 50
	}
	dashes := width - len(title) - 4
	if dashes < 3 {
		dashes = 3
	}
	fmt.Print("\n-- ")
	successColorFG.Print(title)
	fmt.Println(" " + strings.Repeat("-", dashes))
}

func printTokens(tokens []glsl.Token) error {
	data := pterm.TableData{{"Pos", "Kind", "Lexeme", "Value"}}
	for _, tok := range tokens {
		data = append(data, []string{
			fmt.Sprintf("%d:%d", tok.Span.Start.Line, tok.Span.Start.Column),
			tok.Kind.String(),
			tok.Lexeme,
			tok.String(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printDeclarations(decls []glsl.Declaration) error {
	data := pterm.TableData{{"Kind", "Name", "Type", "Detail"}}
	for _, decl := range decls {
		switch d := decl.(type) {
		case *glsl.PrecisionDeclaration:
			data = append(data, []string{"precision", "", d.Type.String(), d.Precision.String()})
		case *glsl.FunctionPrototype:
			params := make([]string, len(d.Params))
			for i, p := range d.Params {
				params[i] = paramString(p)
			}
			data = append(data, []string{"prototype", d.Name, d.ReturnType.String(), "(" + strings.Join(params, ", ") + ")"})
		case *glsl.DeclarationList:
			for _, sd := range d.Declarations {
				data = append(data, []string{"declaration", sd.Name, variantString(sd.Type), singleDetail(sd)})
			}
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printProgram(prog *binding.Program) error {
	data := pterm.TableData{{"Class", "Name", "Type", "Slot", "Detail"}}
	for _, a := range prog.Attributes {
		data = append(data, []string{
			"attribute", a.Name, a.Type.String(),
			fmt.Sprintf("location %d", a.Location),
			fmt.Sprintf("%v @ %d", a.Format, a.Offset),
		})
	}
	for _, u := range prog.Uniforms {
		data = append(data, []string{
			"uniform", u.Name, u.Type.String(),
			fmt.Sprintf("binding %d", u.Binding),
			fmt.Sprintf("%d bytes, visibility %v", u.Size, u.Visibility),
		})
	}
	for _, v := range prog.Varyings {
		detail := ""
		if v.Invariant {
			detail = "invariant"
		}
		data = append(data, []string{"varying", v.Name, v.Type.String(), "", detail})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	fmt.Printf("vertex stride: %d bytes, %d vertex attributes, %d bind group entries\n",
		prog.Layout.ArrayStride, len(prog.Layout.Attributes), len(prog.BindGroupLayoutEntries()))
	return nil
}

func variantString(v glsl.VariantTypeSpecifier) string {
	if v.Invariant {
		return "invariant"
	}
	return v.Type.String()
}

func paramString(p glsl.ParamDeclaration) string {
	var parts []string
	if p.TypeQualifier != glsl.QualifierNone {
		parts = append(parts, p.TypeQualifier.String())
	}
	if p.ParamQualifier != glsl.ParamNone {
		parts = append(parts, p.ParamQualifier.String())
	}
	parts = append(parts, p.Spec.String())
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	s := strings.Join(parts, " ")
	if p.ArraySize != nil {
		s += "[]"
	}
	return s
}

func singleDetail(sd glsl.SingleDeclaration) string {
	switch {
	case sd.ArraySize != nil:
		if n, ok := binding.ArrayLength(sd.ArraySize); ok {
			return fmt.Sprintf("array[%d]", n)
		}
		return "array"
	case sd.Initializer != nil:
		return "initialized"
	default:
		return ""
	}
}
