package ast

// Declarations

// VarDeclaration introduces a name without a value (`var x;`).
type VarDeclaration struct {
	nodeImpl
	declarationMarker

	Name string `json:"name"`
}

func NewVarDeclaration(name string) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name}
}

func (d *VarDeclaration) String() string {
	return "var " + d.Name + ";"
}

// VarDefinition introduces a name bound to the value of Value (`var x = e;`).
type VarDefinition struct {
	nodeImpl
	declarationMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewVarDefinition(name string, value Expression) *VarDefinition {
	return &VarDefinition{nodeImpl: newNodeImpl(NodeVarDefinition), Name: name, Value: value}
}

func (d *VarDefinition) String() string {
	return "var " + d.Name + " = " + d.Value.String() + ";"
}

// StatementDeclaration wraps a statement appearing at declaration position.
type StatementDeclaration struct {
	nodeImpl
	declarationMarker

	Statement Statement `json:"statement"`
}

func NewStatementDeclaration(stmt Statement) *StatementDeclaration {
	return &StatementDeclaration{nodeImpl: newNodeImpl(NodeStatementDeclaration), Statement: stmt}
}

func (d *StatementDeclaration) String() string {
	return d.Statement.String()
}
