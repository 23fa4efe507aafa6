// Package crypto wraps the Argon2id primitive behind the two fixed cost
// profiles and provides the constrained-alphabet reduction for the final
// credential. It implements no primitive of its own; everything here is a
// deterministic composition of golang.org/x/crypto/argon2.
package crypto
