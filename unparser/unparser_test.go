package unparser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2nes/javalang/astutil"
	"github.com/c2nes/javalang/lexer"
	"github.com/c2nes/javalang/parser"
	"github.com/c2nes/javalang/unparser"
)

// roundTrip parses src, unparses the result, reparses that, and returns
// both ASTs so the caller can assert structural equality — spec.md §8
// property 2 ("parse∘unparse idempotence").
func roundTrip(t *testing.T, src string) (first, second string) {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err)
	unitA, err := parser.Parse(toks)
	require.NoError(t, err)

	out := unparser.Unparse(unitA)

	toks2, err := lexer.Tokenize([]byte(out))
	require.NoError(t, err, "unparsed source must re-tokenize: %s", out)
	unitB, err := parser.Parse(toks2)
	require.NoError(t, err, "unparsed source must re-parse: %s", out)

	require.True(t, astutil.Equal(unitA, unitB), "parse(unparse(parse(src))) must equal parse(src), modulo position:\n%s", astutil.Diff(unitA, unitB))

	out2 := unparser.Unparse(unitB)
	toks3, err := lexer.Tokenize([]byte(out2))
	require.NoError(t, err)
	unitC, err := parser.Parse(toks3)
	require.NoError(t, err)
	require.True(t, astutil.Equal(unitB, unitC), "a second unparse∘parse round must be a fixed point")

	return out, out2
}

func TestRoundTripSimpleClass(t *testing.T) {
	roundTrip(t, "package com.example;\n\nclass Foo {\n    int x;\n    void bar() { x = 1; }\n}\n")
}

func TestRoundTripInterfaceAndGenerics(t *testing.T) {
	roundTrip(t, "interface Box<T extends Comparable<T>> {\n    T get();\n    void set(T value);\n}\n")
}

func TestRoundTripEnumWithConstantsAndMembers(t *testing.T) {
	roundTrip(t, "enum Color {\n    RED, GREEN, BLUE;\n\n    String describe() { return \"color\"; }\n}\n")
}

func TestRoundTripAnnotationDeclaration(t *testing.T) {
	roundTrip(t, "@interface Marker {\n    String value() default \"x\";\n}\n")
}

func TestRoundTripControlFlow(t *testing.T) {
	roundTrip(t, `class F {
    void m() {
        for (int i = 0; i < 10; i++) {
            if (i % 2 == 0) {
                continue;
            } else {
                System.out.println(i);
            }
        }
        int j = 0;
        while (j < 10) {
            j++;
        }
        do {
            j--;
        } while (j > 0);
    }
}
`)
}

func TestRoundTripTryCatchFinally(t *testing.T) {
	roundTrip(t, `class F {
    void m() throws Exception {
        try (AutoCloseable c = open()) {
            use(c);
        } catch (java.io.IOException | RuntimeException e) {
            handle(e);
        } finally {
            done();
        }
    }
}
`)
}

func TestRoundTripLambdaAndMethodReference(t *testing.T) {
	roundTrip(t, `class F {
    void m() {
        Runnable r = () -> System.out.println("hi");
        java.util.function.Function<String, Integer> len = String::length;
    }
}
`)
}

func TestRoundTripSwitch(t *testing.T) {
	roundTrip(t, `class F {
    void m(int x) {
        switch (x) {
            case 1:
                a();
                break;
            case 2:
                b();
                break;
            default:
                c();
        }
    }
}
`)
}

func TestRoundTripArrayCreatorAndInitializer(t *testing.T) {
	roundTrip(t, `class F {
    int[] xs = { 1, 2, 3 };
    int[][] ys = new int[4][];
    Object o = new int[]{ 1, 2 };
}
`)
}

func TestRoundTripAnonymousClassCreator(t *testing.T) {
	roundTrip(t, `class F {
    Runnable r = new Runnable() {
        public void run() {
            go();
        }
    };
}
`)
}

func TestRoundTripAnnotations(t *testing.T) {
	roundTrip(t, `class F {
    @Override
    @SuppressWarnings("unchecked")
    public String toString() {
        return "f";
    }
}
`)
}
