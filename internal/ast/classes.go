package ast

// Class is a class definition: a name, a parent name (empty only for
// the synthetic Object installed by the semantic analyzer), the
// source file it came from, and an ordered list of features.
type Class struct {
	baseNode
	Name     string
	Parent   string
	Features []Feature
}

func NewClass(file string, line int, name, parent string, features []Feature) *Class {
	return &Class{baseNode: baseNode{File: file, Ln: line}, Name: name, Parent: parent, Features: features}
}

// Feature is a tagged union of Attribute and Method, the two kinds of
// class member Cool supports.
type Feature interface {
	Node
	featureNode()
	FeatureName() string
}

// Formal is a single method parameter: a name and its declared type.
type Formal struct {
	baseNode
	Name string
	Type string
}

func NewFormal(file string, line int, name, typ string) *Formal {
	return &Formal{baseNode: baseNode{File: file, Ln: line}, Name: name, Type: typ}
}

// Attribute is a class-level field: `name : Type [<- expr]`. Init is
// the NoExpr sentinel when no initializer was written.
type Attribute struct {
	baseNode
	Name string
	Type string
	Init Expression
}

func NewAttribute(file string, line int, name, typ string, init Expression) *Attribute {
	return &Attribute{baseNode: baseNode{File: file, Ln: line}, Name: name, Type: typ, Init: init}
}

func (a *Attribute) featureNode()        {}
func (a *Attribute) FeatureName() string { return a.Name }

// Method is a class-level method: `name(formals) : ReturnType { body }`.
type Method struct {
	baseNode
	Name       string
	Formals    []*Formal
	ReturnType string
	Body       Expression
}

func NewMethod(file string, line int, name string, formals []*Formal, returnType string, body Expression) *Method {
	return &Method{baseNode: baseNode{File: file, Ln: line}, Name: name, Formals: formals, ReturnType: returnType, Body: body}
}

func (m *Method) featureNode()        {}
func (m *Method) FeatureName() string { return m.Name }
