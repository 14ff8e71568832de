package polaris

import (
	"fmt"
	"testing"
)

const benchScript = `script(polaris)
  R:   mm(2.54 * index, 0)
  R1:  deg(90)
  C:   mm(0, 5.08 * index) @ deg(-45)
  U:   inch(1, 1) @ turn(index / 8)
  LED: mm(10 * index, 10) @ grad(100)
`

func benchEntities(n int) []Entity {
	prefixes := []string{"R", "C", "U", "LED", "J"}
	out := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		e := Entity{Reference: fmt.Sprintf("%s%d", prefixes[i%len(prefixes)], i)}
		if i%7 == 0 {
			e.Expression = "mm(0.5, -0.5) @ deg(15)"
		}
		out = append(out, e)
	}
	return out
}

func BenchmarkParseScript(b *testing.B) {
	src := benchScript
	for i := 0; i < b.N; i++ {
		if _, err := ParseScript(src, nil); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	scripts := []string{benchScript}
	entities := benchEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Resolve(scripts, entities, nil); err != nil {
			b.Fatalf("resolve: %v", err)
		}
	}
}

func BenchmarkFormatScript(b *testing.B) {
	matchers, err := ParseScript(benchScript, nil)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FormatScript(matchers, nil); err != nil {
			b.Fatalf("format: %v", err)
		}
	}
}
