package graph

// Declaration represents a named function or variable declared in a source
type Declaration struct {
	Name           string   `yaml:"name" json:"name"`
	Location       Span     `yaml:"location" json:"location"`
	ParameterNames []string `yaml:"parameterNames,omitempty" json:"parameterNames,omitempty"`
}

// MemberExpression represents a property access such as this.foo.a
type MemberExpression struct {
	Name       string `yaml:"name" json:"name"`             // property name
	Expression string `yaml:"expression" json:"expression"` // full dotted path
	Location   Span   `yaml:"location" json:"location"`
	Property   Span   `yaml:"property" json:"property"` // location of the property name
}

// Symbols holds the declarations found in one source
type Symbols struct {
	Functions         []*Declaration      `yaml:"functions" json:"functions"`
	Variables         []*Declaration      `yaml:"variables" json:"variables"`
	MemberExpressions []*MemberExpression `yaml:"memberExpressions,omitempty" json:"memberExpressions,omitempty"`
}

// LookupFunction returns the first function declared with name
func (s *Symbols) LookupFunction(name string) *Declaration {
	for _, fn := range s.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// LookupVariable returns the first variable declared with name
func (s *Symbols) LookupVariable(name string) *Declaration {
	for _, variable := range s.Variables {
		if variable.Name == name {
			return variable
		}
	}
	return nil
}
