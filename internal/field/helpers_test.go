package field

import (
	"github.com/Veraticus/ledgerfield/internal/fuzzy"
	"github.com/Veraticus/ledgerfield/internal/model"
)

func newTestVerifier() *Verifier {
	return NewVerifier(fuzzy.NewMatcher(0))
}

func newTestStepper() *FieldStepper {
	return NewStepper(newTestVerifier())
}

func testStore(methods, tags []string) model.Catalog {
	return model.NewCatalog(methods, tags)
}
