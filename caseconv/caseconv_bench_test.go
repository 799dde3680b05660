package caseconv

import "testing"

var benchInputs = []string{
	"hello-world",
	"hello-123-world",
	"a_very-long identifier_with MANY-parts_and_42_digits",
	"x",
}

func BenchmarkToCamelCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		input := benchInputs[i%len(benchInputs)]
		if _, err := ToCamelCase(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToDotCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		input := benchInputs[i%len(benchInputs)]
		if _, err := ToDotCase(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpandDigits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		expandDigits("abc0123456789xyz")
	}
}
