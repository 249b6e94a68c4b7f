package emitter

import "github.com/shadowgen-hq/shadowgen/internal/scanner"

// ListFieldsOp emits the bare name of every matching field, one per line.
type ListFieldsOp struct{}

func (*ListFieldsOp) Name() string { return "list-fields" }

func (*ListFieldsOp) Emit(decls []scanner.Declaration, opts Options) ([]string, error) {
	return listNames(decls, opts, scanner.KindField)
}

// ListMethodsOp emits the bare name of every matching method, one per line.
type ListMethodsOp struct{}

func (*ListMethodsOp) Name() string { return "list-methods" }

func (*ListMethodsOp) Emit(decls []scanner.Declaration, opts Options) ([]string, error) {
	return listNames(decls, opts, scanner.KindMethod)
}

func listNames(decls []scanner.Declaration, opts Options, kind scanner.Kind) ([]string, error) {
	filter, err := resolveFilter(decls, opts)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, d := range decls {
		if d.Kind == kind && matchesFilter(filter, d) {
			out = append(out, d.Name)
		}
	}
	return out, nil
}
