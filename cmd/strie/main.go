// Command strie builds a succinct trie from lines of standard input and
// reports its size, mirroring the reference set_build example: it exists
// to drive and benchmark the core library, not to be a general-purpose
// tool.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	set3 "github.com/TomTonic/Set3"

	"github.com/gostrie/strie/strie"
)

func main() {
	log.SetFlags(0)

	typ := flag.String("type", "", "null | hashset | splayset | parentheses")
	showWords := flag.Bool("w", false, "print every reconstructed word (parentheses mode only)")
	normalize := flag.Bool("normalize", false, "normalize input lines to Unicode NFC before building")
	flag.Parse()

	switch *typ {
	case "null", "hashset", "splayset", "parentheses":
	default:
		log.Fatalf("type must be one of: null, hashset, splayset, parentheses")
	}

	lines, err := readLines(os.Stdin, *normalize)
	if err != nil {
		log.Fatalf("reading stdin: %v", err)
	}

	switch *typ {
	case "null":
		runNull(lines)
	case "hashset":
		runHashset(lines)
	case "splayset":
		runSplayset(lines)
	case "parentheses":
		if err := runParentheses(lines, *showWords); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func readLines(r *os.File, normalize bool) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines [][]byte
	for scanner.Scan() {
		line := scanner.Bytes()
		if normalize {
			line = strie.FromString(string(line)).Bytes()
		} else {
			line = append([]byte(nil), line...)
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func runNull(lines [][]byte) {
	bl := strie.NewByteLines(joinLines(lines))
	for {
		if _, ok := bl.Next(); !ok {
			break
		}
	}
}

func runHashset(lines [][]byte) {
	set := set3.Empty[string]()
	for _, line := range lines {
		set.Add(string(line))
	}
}

func runSplayset(lines [][]byte) {
	set := newSplaySet()
	for _, line := range lines {
		set.Insert(string(line))
	}
}

func runParentheses(lines [][]byte, showWords bool) error {
	bl := strie.NewByteLines(joinLines(lines))
	builder := strie.NewBuilder[strie.Letter](bl, strie.NewLetterStore())
	tree := builder.BuildAll()
	if err := bl.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	fmt.Printf("NODES: %d\n", tree.NodeCount())
	fmt.Printf("BYTES: %d\n", tree.ExternalByteSize())

	if showWords {
		for _, word := range strie.AllWords(tree) {
			fmt.Println(string(word))
		}
	}
	return nil
}

func joinLines(lines [][]byte) *bytes.Reader {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return bytes.NewReader(buf.Bytes())
}
