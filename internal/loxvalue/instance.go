/*
File    : loxgo/internal/loxvalue/instance.go

Instance is a live object of some Class: a reference to its class plus
a mutable field map, mutated in place.
*/
package loxvalue

import "fmt"

// Instance is a runtime object created by calling a Class.
type Instance struct {
	Class  *Class
	fields map[string]interface{}
}

// NewInstance creates a field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: make(map[string]interface{})}
}

// Get reads a field if present, else a method bound to this instance,
// else reports absence via ok=false (the caller turns that into an
// "Undefined property" RuntimeError, which needs the requesting
// token's line, something Instance itself has no access to).
func (i *Instance) Get(name string) (interface{}, bool) {
	if value, ok := i.fields[name]; ok {
		return value, true
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set defines or overwrites a field.
func (i *Instance) Set(name string, value interface{}) {
	i.fields[name] = value
}

// String renders `"<class-name> instance"`.
func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.ClassName)
}
