package rop

// Builder collects the parts of an outcome before it is created. It replaces
// in-place setters so that built outcomes stay immutable.
type Builder struct {
	code    Code
	message string
	cause   error
}

func NewBuilder(code Code) *Builder {
	return &Builder{code: code}
}

func (b *Builder) Code(code Code) *Builder {
	b.code = code
	return b
}

func (b *Builder) Message(message string) *Builder {
	b.message = message
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.cause = err
	return b
}

// Outcome creates the outcome. It panics if a message or cause is set on
// CodeOk.
func (b *Builder) Outcome() *Outcome {
	return &Outcome{state: build(b.code, b.message, b.cause)}
}

// BuildResult creates a Result without a value from b.
func BuildResult[T any](b *Builder) Result[T] {
	return Result[T]{state: build(b.code, b.message, b.cause)}
}
