/*
File    : loxgo/internal/loxvalue/class.go

Class is the runtime representation of a `class` declaration: a name,
an optional superclass, and a method table. As a Callable its arity is
its initializer's arity (0 if it has none); constructing an instance
is itself modeled as "calling" the class.
*/
package loxvalue

// Class is a Lox class object.
type Class struct {
	ClassName  string
	Superclass *Class // nil if the class has no `< Super` clause
	Methods    map[string]*Function
}

// NewClass builds a Class from its declared name, optional superclass,
// and method table (method name → user function closing over the
// class's defining environment).
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{ClassName: name, Superclass: superclass, Methods: methods}
}

func (c *Class) Name() string { return c.ClassName }

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name on this class, then walks the superclass
// chain, single inheritance only.
func (c *Class) FindMethod(name string) *Function {
	if method, ok := c.Methods[name]; ok {
		return method
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// String renders the class's own name, matching the stringify rule for
// a callable whose kind is a class.
func (c *Class) String() string { return c.ClassName }
