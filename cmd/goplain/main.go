// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/blinklabs-io/goplain/plain"
)

type cmdFlags struct {
	flagset  *flag.FlagSet
	dataType string
	partial  bool
}

func newCmdFlags() *cmdFlags {
	f := &cmdFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.dataType,
		"type",
		"uint",
		"shape to decode the input as: uint, int, float, bool, char, list, set, map, array:N",
	)
	f.flagset.BoolVar(
		&f.partial,
		"partial",
		false,
		"allow unconsumed input after the decoded value",
	)
	return f
}

func main() {
	f := newCmdFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	data, err := readInput(f.flagset.Args())
	if err != nil {
		fmt.Printf("failed to read input: %s\n", err)
		os.Exit(1)
	}
	// Trailing newlines are almost always artifacts of how the input file
	// was written, not part of the value
	data = []byte(strings.TrimRight(string(data), "\r\n"))
	dest := destForType(f.dataType)
	if dest == nil {
		fmt.Printf("unknown type: %s\n", f.dataType)
		os.Exit(1)
	}
	if f.partial {
		consumed, err := plain.Decode(data, dest)
		if err != nil {
			reportError(data, err)
			os.Exit(1)
		}
		fmt.Printf("%v\n", deref(dest))
		if consumed < len(data) {
			fmt.Printf("(%d bytes of trailing input not consumed)\n", len(data)-consumed)
		}
		return
	}
	if err := plain.DecodeComplete(data, dest); err != nil {
		reportError(data, err)
		os.Exit(1)
	}
	fmt.Printf("%v\n", deref(dest))
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func destForType(dataType string) any {
	switch dataType {
	case "uint":
		return new(uint64)
	case "int":
		return new(int64)
	case "float":
		return new(float64)
	case "bool":
		return new(bool)
	case "char":
		return new(plain.Char)
	case "list":
		return new([]uint64)
	case "set":
		return new(map[uint64]struct{})
	case "map":
		return new(map[plain.Char]uint64)
	}
	// Fixed-size arrays carry their length in the type, so the length has to
	// come from the flag: array:N decodes exactly N comma-delimited uints
	if count, ok := strings.CutPrefix(dataType, "array:"); ok {
		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return nil
		}
		arrayType := reflect.ArrayOf(n, reflect.TypeOf(uint64(0)))
		return reflect.New(arrayType).Interface()
	}
	return nil
}

func deref(dest any) any {
	return reflect.ValueOf(dest).Elem().Interface()
}

func reportError(data []byte, err error) {
	var decodeErr *plain.Error
	if errors.As(err, &decodeErr) {
		fmt.Printf(
			"decode failed at offset %d: %s\n",
			decodeErr.Offset(data),
			err,
		)
		return
	}
	fmt.Printf("decode failed: %s\n", err)
}
