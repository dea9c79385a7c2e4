package reduce

import "github.com/XOSplicer/featherweight-java/internal/ast"

// substitute implements [v̄/x̄, v/this] t: capture-free since FJ has no
// binders other than method parameters, which classtable.Build already
// guarantees are unique per method. Every Variable whose name is a key
// in bindings is replaced; everything else is copied structurally so
// the original term tree is never mutated.
func substitute(bindings map[ast.FieldName]ast.Term, t ast.Term) ast.Term {
	switch term := t.(type) {
	case *ast.Variable:
		if v, ok := bindings[term.Name]; ok {
			return v
		}
		return term
	case *ast.FieldAccess:
		return &ast.FieldAccess{
			Object:   substitute(bindings, term.Object),
			Field:    term.Field,
			Position: term.Position,
		}
	case *ast.MethodCall:
		args := make([]ast.Term, len(term.Args))
		for i, a := range term.Args {
			args[i] = substitute(bindings, a)
		}
		return &ast.MethodCall{
			Object:   substitute(bindings, term.Object),
			Method:   term.Method,
			Args:     args,
			Position: term.Position,
		}
	case *ast.NewCall:
		args := make([]ast.Term, len(term.Args))
		for i, a := range term.Args {
			args[i] = substitute(bindings, a)
		}
		return &ast.NewCall{Class: term.Class, Args: args, Position: term.Position}
	case *ast.Cast:
		return &ast.Cast{To: term.To, Term: substitute(bindings, term.Term), Position: term.Position}
	default:
		return t
	}
}
