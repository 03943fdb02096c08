package service

// OrderCodeGenerator produces human-readable order codes.
type OrderCodeGenerator interface {
	Generate() string
}
