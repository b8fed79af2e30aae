package toml_test

import (
	"fmt"

	toml "github.com/tomlgo/tomlcore"
)

func ExampleParseBytes() {
	doc := []byte(`
title = "TOML Example"

[owner]
name = "Tom"
`)
	root, err := toml.ParseBytes(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	title, _ := root.Get("title")
	fmt.Println(title)
	// Output: TOML Example
}

func ExampleParseText_arrayOfTables() {
	root, err := toml.ParseText(`
[[fruit]]
name = "apple"

[[fruit]]
name = "banana"
`, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fruitVal, _ := root.Get("fruit")
	fruit := fruitVal.(*toml.Array)
	for i := 0; i < fruit.Len(); i++ {
		name, _ := fruit.Get(i).(*toml.Table).Get("name")
		fmt.Println(name)
	}
	// Output:
	// apple
	// banana
}

func ExampleParseText_customFloatParser() {
	type decimal struct{ lexical string }
	parseFloat := func(lexical string) (any, error) {
		return decimal{lexical: lexical}, nil
	}
	root, err := toml.ParseText("precision = 0.982492", parseFloat)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := root.Get("precision")
	fmt.Println(v.(decimal).lexical)
	// Output: 0.982492
}

func ExampleParseBytes_error() {
	_, err := toml.ParseBytes([]byte("a = 1\na = 2\n"))
	fmt.Println(err != nil)
	// Output: true
}
