// Package syntax defines the collaborator boundary between a Buffer and an
// external tokenizer: a Descriptor names a syntax, a Set resolves file
// names and extensions to Descriptors, and the Lexer interface is
// implemented by the host, never by this module. Tokenization itself is
// deliberately out of scope here.
package syntax
