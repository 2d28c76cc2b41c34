package config

// ModelFileNames are the recognized class model file names, in lookup order.
var ModelFileNames = []string{"fxresolve.yaml", "fxresolve.yml"}

// IsTestMode indicates if the program is running in test mode.
// This is set once at startup, before any scope is built.
var IsTestMode = false

// Display names
const (
	ErrorTypeName       = "<error>"
	ConstructorName     = "<init>"
	AnonymousObjectName = "<no name provided>"
)

// Built-in classifier names used by models that omit a type.
const (
	UnitTypeName = "Unit"
	AnyTypeName  = "Any"
)

// Annotation names understood by the model loader.
const (
	NonnullAnnotation  = "Nonnull"
	NullableAnnotation = "Nullable"
)
