// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// Expression is an expression node.
type Expression interface {
	exprNode()
}

// ConstantExpr is a literal.
type ConstantExpr struct {
	Value Constant
}

// IdentExpr is a variable reference.
type IdentExpr struct {
	Name string
}

// ConstructExpr is a basic-type constructor call such as vec3(1.0).
type ConstructExpr struct {
	Type BasicType
	Args []Expression
}

// CallExpr is a function call, or a constructor of a user type.
type CallExpr struct {
	Func string
	Args []Expression
}

// IndexExpr is an array or vector subscript.
type IndexExpr struct {
	Base  Expression
	Index Expression
}

// FieldExpr is a member access or swizzle.
type FieldExpr struct {
	Base  Expression
	Field string
}

// UnaryExpr is a prefix operator: + - ! ~ ++ --.
type UnaryExpr struct {
	Op      string
	Operand Expression
}

// PostfixExpr is a postfix ++ or --.
type PostfixExpr struct {
	Op      string
	Operand Expression
}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Op    string
	Left  Expression
	Right Expression
}

// ConditionalExpr is cond ? then : else.
type ConditionalExpr struct {
	Cond Expression
	Then Expression
	Else Expression
}

// AssignExpr is an assignment, plain or compound.
type AssignExpr struct {
	Op     string
	Target Expression
	Value  Expression
}

func (*ConstantExpr) exprNode()    {}
func (*IdentExpr) exprNode()       {}
func (*ConstructExpr) exprNode()   {}
func (*CallExpr) exprNode()        {}
func (*IndexExpr) exprNode()       {}
func (*FieldExpr) exprNode()       {}
func (*UnaryExpr) exprNode()       {}
func (*PostfixExpr) exprNode()     {}
func (*BinaryExpr) exprNode()      {}
func (*ConditionalExpr) exprNode() {}
func (*AssignExpr) exprNode()      {}

// binaryLevels lists binary operators from lowest to highest precedence.
var binaryLevels = [][]string{
	{"||"},
	{"^^"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!="},
	{"<", ">", "<=", ">="},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%"},
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"<<=": true, ">>=": true, "&=": true, "^=": true, "|=": true,
}

// ParseExpression parses an assignment expression and returns it with the
// unconsumed remainder.
func ParseExpression(input string) (Expression, string, error) {
	return run(input, assignmentExpression)
}

// matchPunct consumes op if it is the longest punctuator at c.
func matchPunct(c cursor, op string) (cursor, bool) {
	at := c.skipSpace()
	p, next := scanPunct(at)
	if p != op {
		return c, false
	}
	return next.skipSpace(), true
}

func expectPunct(c cursor, rule, op string) (cursor, *ParseError) {
	if next, ok := matchPunct(c, op); ok {
		return next, nil
	}
	return c, c.fail(ErrSyntax, rule, "expected %q, found %s", op, c.describe())
}

// assignmentExpression is the initializer form. The target of an assignment
// is any unary expression; the grammar does not check it is an lvalue.
func assignmentExpression(c cursor) (Expression, cursor, *ParseError) {
	lhs, next, err := conditionalExpression(c)
	if err != nil {
		return nil, c, err
	}
	op, after := scanPunct(next.skipSpace())
	if !assignOps[op] {
		return lhs, next, nil
	}
	rhs, end, err := assignmentExpression(after.skipSpace())
	if err != nil {
		return nil, c, err
	}
	return &AssignExpr{Op: op, Target: lhs, Value: rhs}, end, nil
}

// conditionalExpression is also the array-size form.
func conditionalExpression(c cursor) (Expression, cursor, *ParseError) {
	cond, next, err := binaryExpression(c, 0)
	if err != nil {
		return nil, c, err
	}
	afterQ, ok := matchPunct(next, "?")
	if !ok {
		return cond, next, nil
	}
	then, next, err := assignmentExpression(afterQ)
	if err != nil {
		return nil, c, err
	}
	next, err = expectPunct(next, "conditional_expression", ":")
	if err != nil {
		return nil, c, err
	}
	els, end, err := assignmentExpression(next)
	if err != nil {
		return nil, c, err
	}
	return &ConditionalExpr{Cond: cond, Then: then, Else: els}, end, nil
}

func binaryExpression(c cursor, level int) (Expression, cursor, *ParseError) {
	if level == len(binaryLevels) {
		return unaryExpression(c)
	}
	left, next, err := binaryExpression(c, level+1)
	if err != nil {
		return nil, c, err
	}
	for {
		op, after := scanPunct(next.skipSpace())
		if !containsOp(binaryLevels[level], op) {
			return left, next, nil
		}
		right, end, err := binaryExpression(after.skipSpace(), level+1)
		if err != nil {
			return nil, c, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
		next = end
	}
}

func containsOp(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func unaryExpression(c cursor) (Expression, cursor, *ParseError) {
	op, after := scanPunct(c.skipSpace())
	switch op {
	case "+", "-", "!", "~", "++", "--":
		operand, end, err := unaryExpression(after.skipSpace())
		if err != nil {
			return nil, c, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, end, nil
	}
	return postfixExpression(c)
}

func postfixExpression(c cursor) (Expression, cursor, *ParseError) {
	expr, next, err := primaryExpression(c)
	if err != nil {
		return nil, c, err
	}
	for {
		op, after := scanPunct(next.skipSpace())
		switch op {
		case "[":
			index, end, err := assignmentExpression(after.skipSpace())
			if err != nil {
				return nil, c, err
			}
			end, err = expectPunct(end, "postfix_expression", "]")
			if err != nil {
				return nil, c, err
			}
			expr, next = &IndexExpr{Base: expr, Index: index}, end
		case ".":
			field, end, ok := lexIdentifier(after.skipSpace())
			if !ok {
				return nil, c, after.fail(ErrSyntax, "postfix_expression", "expected field name after '.', found %s", after.describe())
			}
			expr, next = &FieldExpr{Base: expr, Field: field}, end.skipSpace()
		case "++", "--":
			expr, next = &PostfixExpr{Op: op, Operand: expr}, after.skipSpace()
		default:
			return expr, next, nil
		}
	}
}

func primaryExpression(c cursor) (Expression, cursor, *ParseError) {
	at := c.skipSpace()
	if at.atEnd() {
		return nil, c, at.fail(ErrIncompleteInput, "primary_expression", "expected expression, found end of input")
	}

	if next, ok := matchPunct(at, "("); ok {
		inner, end, err := assignmentExpression(next)
		if err != nil {
			return nil, c, err
		}
		end, err = expectPunct(end, "primary_expression", ")")
		if err != nil {
			return nil, c, err
		}
		return inner, end, nil
	}

	if k, end, err := lexConstant(at); err == nil {
		return &ConstantExpr{Value: k}, end.skipSpace(), nil
	} else if startsNumber(at) {
		return nil, c, err
	}

	if t, end, ok := lexBasicType(at); ok {
		afterParen, ok := matchPunct(end, "(")
		if !ok {
			return nil, c, end.fail(ErrSyntax, "primary_expression", "expected '(' after constructor type %s, found %s", t, end.describe())
		}
		args, end, err := argumentList(afterParen)
		if err != nil {
			return nil, c, err
		}
		return &ConstructExpr{Type: t, Args: args}, end, nil
	}

	if name, end, ok := lexIdentifier(at); ok {
		if IsReserved(name) {
			return nil, c, at.fail(ErrSyntax, "primary_expression", "reserved word %q in expression", name)
		}
		if afterParen, ok := matchPunct(end, "("); ok {
			args, end, err := argumentList(afterParen)
			if err != nil {
				return nil, c, err
			}
			return &CallExpr{Func: name, Args: args}, end, nil
		}
		return &IdentExpr{Name: name}, end.skipSpace(), nil
	}

	if p, _ := scanPunct(at); p == "" {
		return nil, c, at.fail(ErrLexicalMismatch, "primary_expression", "unexpected character %q", at.peek())
	}
	return nil, c, at.fail(ErrSyntax, "primary_expression", "expected expression, found %s", at.describe())
}

// argumentList parses "arg, arg)" after an opening parenthesis. "void" as
// the sole argument denotes an empty list.
func argumentList(c cursor) ([]Expression, cursor, *ParseError) {
	if end, ok := matchPunct(c, ")"); ok {
		return nil, end, nil
	}
	if w, after := scanWord(c.skipSpace()); w == "void" {
		if end, ok := matchPunct(after, ")"); ok {
			return nil, end, nil
		}
	}

	var args []Expression
	next := c
	for {
		arg, end, err := assignmentExpression(next)
		if err != nil {
			return nil, c, err
		}
		args = append(args, arg)
		if after, ok := matchPunct(end, ","); ok {
			next = after
			continue
		}
		end, err = expectPunct(end, "argument_list", ")")
		if err != nil {
			return nil, c, err
		}
		return args, end, nil
	}
}
