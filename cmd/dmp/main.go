package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kalafut/dmp"
	"github.com/kalafut/q"
)

var CLI struct {
	Debug bool `help:"Dump the computed script/patch via kalafut/q before printing it."`

	Diff struct {
		A     *os.File `arg help:"First file."`
		B     *os.File `arg help:"Second file."`
		Delta bool     `help:"Print the ToDelta encoding instead of a pretty script."`
	} `cmd help:"Diff two files."`

	Match struct {
		Text    *os.File `arg help:"Text to search."`
		Pattern string   `arg help:"Pattern to locate."`
		Loc     int      `arg help:"Expected rune offset."`
	} `cmd help:"Locate pattern in text near loc."`

	Patch struct {
		Make struct {
			A *os.File `arg help:"Before file."`
			B *os.File `arg help:"After file."`
		} `cmd help:"Build a patch between two files and print it as patch text."`

		Apply struct {
			Before *os.File `arg help:"Before file."`
			Patch  *os.File `arg help:"Patch text file."`
		} `cmd help:"Apply a patch to a file, reporting which hunks matched."`
	} `cmd help:"Build or apply a patch."`

	Delta struct {
		Encode struct {
			A *os.File `arg help:"First file."`
			B *os.File `arg help:"Second file."`
		} `cmd help:"Print the ToDelta encoding of the diff between two files."`

		Decode struct {
			A     *os.File `arg help:"First file, the delta's text1."`
			Delta string   `arg help:"Delta text produced by 'delta encode'."`
		} `cmd help:"Reconstruct text2 from a delta and print it."`
	} `cmd help:"Encode or decode the compact delta format."`
}

func mustRead(f *os.File) string {
	data, err := os.ReadFile(f.Name())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return string(data)
}

func debugDump(v any) {
	if CLI.Debug {
		q.Q(v)
	}
}

func main() {
	ctx := kong.Parse(&CLI)
	engine := dmp.New()

	switch ctx.Command() {
	case "diff <a> <b>":
		diffs := engine.Diff.Main(mustRead(CLI.Diff.A), mustRead(CLI.Diff.B), true)
		diffs = engine.Diff.CleanupSemantic(diffs)
		debugDump(diffs)
		if CLI.Diff.Delta {
			fmt.Println(dmp.ToDelta(diffs))
		} else {
			fmt.Println(dmp.PrettyHTML(diffs))
		}

	case "match <text> <pattern> <loc>":
		loc, err := engine.Match.Main(mustRead(CLI.Match.Text), CLI.Match.Pattern, CLI.Match.Loc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		debugDump(loc)
		fmt.Println(loc)

	case "patch make <a> <b>":
		patches := engine.Patch.MakeFromTexts(mustRead(CLI.Patch.Make.A), mustRead(CLI.Patch.Make.B))
		debugDump(patches)
		fmt.Print(dmp.ToText(patches))

	case "patch apply <before> <patch>":
		patches, err := dmp.FromText(mustRead(CLI.Patch.Apply.Patch))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		result, applied := engine.Patch.Apply(patches, mustRead(CLI.Patch.Apply.Before))
		debugDump(applied)
		fmt.Fprintln(os.Stderr, applied)
		fmt.Print(result)

	case "delta encode <a> <b>":
		diffs := engine.Diff.Main(mustRead(CLI.Delta.Encode.A), mustRead(CLI.Delta.Encode.B), true)
		debugDump(diffs)
		fmt.Println(dmp.ToDelta(diffs))

	case "delta decode <a> <delta>":
		diffs, err := dmp.FromDelta(mustRead(CLI.Delta.Decode.A), CLI.Delta.Decode.Delta)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		debugDump(diffs)
		fmt.Println(dmp.Text2(diffs))

	default:
		panic(ctx.Command())
	}
}
