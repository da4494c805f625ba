package internal

// moduleRegistry is the host-populated mapping from module name to a
// loader that returns the names it adds into the global environment
// on import. This package defines only the mechanism; concrete
// modules are registered by a host program via RegisterModule.
var moduleRegistry = make(map[string]func() map[string]interface{})

// RegisterModule lets a host program add an Import target. Calling it
// twice for the same name replaces the previous loader.
func RegisterModule(name string, loader func() map[string]interface{}) {
	moduleRegistry[name] = loader
}
