//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command shasum prints and checks FIPS 180-4 message digests. Without
// file arguments the input is read from the standard input. The output
// lines are "digest  filename", the format the -c mode reads back.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/markkurossi/shs"
)

func main() {
	algorithm := flag.String("a", "sha256", "hash algorithm")
	check := flag.Bool("c", false, "read digests from the files and check them")
	list := flag.Bool("l", false, "list supported algorithms")
	flag.Parse()

	if *list {
		for _, alg := range shs.Algorithms() {
			fmt.Printf("%s\n", alg)
		}
		return
	}

	alg, err := shs.FromString(*algorithm)
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	ok := true
	for _, file := range files {
		if *check {
			if !checkFile(alg, file) {
				ok = false
			}
		} else {
			if !printFile(alg, file) {
				ok = false
			}
		}
	}
	if !ok {
		os.Exit(1)
	}
}

func digestFile(alg shs.Algorithm, name string) ([]byte, error) {
	var in io.Reader
	if name == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	h := alg.New()
	if _, err := io.Copy(h, in); err != nil {
		return nil, fmt.Errorf("%s: %s", name, err)
	}
	return h.Sum(nil), nil
}

func printFile(alg shs.Algorithm, name string) bool {
	sum, err := digestFile(alg, name)
	if err != nil {
		fmt.Printf("%s\n", err)
		return false
	}
	fmt.Printf("%x  %s\n", sum, name)
	return true
}

func checkFile(alg shs.Algorithm, name string) bool {
	var in io.Reader
	if name == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			fmt.Printf("%s\n", err)
			return false
		}
		defer f.Close()
		in = f
	}

	ok := true
	lineno := 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.IndexByte(line, ' ')
		if idx < 0 {
			fmt.Printf("%s:%d: malformed line\n", name, lineno)
			ok = false
			continue
		}
		expected := strings.ToLower(line[:idx])
		file := strings.TrimPrefix(strings.TrimLeft(line[idx+1:], " "), "*")

		// Lines made with another algorithm are recognized by the
		// digest length.
		lineAlg, err := algorithmForDigest(alg, expected)
		if err != nil {
			fmt.Printf("%s:%d: %s\n", name, lineno, err)
			ok = false
			continue
		}

		sum, err := digestFile(lineAlg, file)
		if err != nil {
			fmt.Printf("%s\n", err)
			ok = false
			continue
		}
		if hex.EncodeToString(sum) == expected {
			fmt.Printf("%s: OK\n", file)
		} else {
			fmt.Printf("%s: FAILED\n", file)
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("%s: %s\n", name, err)
		ok = false
	}
	return ok
}

func algorithmForDigest(alg shs.Algorithm, digest string) (
	shs.Algorithm, error) {

	if _, err := hex.DecodeString(digest); err != nil {
		return 0, fmt.Errorf("malformed digest: %s", err)
	}
	if len(digest) == alg.Size()*2 {
		return alg, nil
	}
	for _, a := range shs.Algorithms() {
		if len(digest) == a.Size()*2 {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unrecognized digest length %d", len(digest))
}
