package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable stand-ins for pointers in mesh dumps. A soup printed as hex
// addresses is hard to follow across flips; "BraveOtter" is not. A triangle
// keeps its name for the life of the process, and no two live objects share
// one. Names are never released, so only debug output should ask for them.

type namer struct {
	mu    sync.Mutex
	names map[interface{}]string
	taken map[string]bool
}

var meshNames = &namer{
	names: make(map[interface{}]string),
	taken: make(map[string]bool),
}

func init() {
	// Names depend on the order they are asked for, so make them differ between
	// runs rather than look like stable identifiers.
	petname.NonDeterministicMode()
}

// Name returns the readable name for a pointer, or "Ø" for nil.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	return meshNames.name(obj)
}

func (n *namer) name(obj interface{}) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if name, ok := n.names[obj]; ok {
		return name
	}
	name := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	if n.taken[name] {
		name = fmt.Sprintf("%s%d", name, len(n.names))
	}
	n.names[obj] = name
	n.taken[name] = true
	return name
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
