package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsAccentsAndSeparators(t *testing.T) {
	assert.Equal(t, []string{"αθηνα", "ελλαδα"}, Normalize("Αθήνα, Ελλάδα"))
	assert.Equal(t, []string{"αγιος", "δημητριος"}, Normalize("Άγιος-Δημήτριος"))
	assert.Equal(t, []string{"cafe", "noir"}, Normalize("Café Noir"))
	assert.Equal(t, []string{"st", "john's"}, Normalize("St. John's"))
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   "))
	assert.Empty(t, Normalize(".,-"))
}

func TestNormalizePreservesTokenOrder(t *testing.T) {
	assert.Equal(t, []string{"λεωφορος", "κηφισιας", "12", "μαρουσι"}, Normalize("Λεωφόρος Κηφισίας 12, Μαρούσι"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "αθηνα", Fold("Αθήνα"))
	assert.Equal(t, "εστιατορια", Fold("Εστιατόρια"))
	assert.Equal(t, "cafe", Fold("Café"))
	assert.Equal(t, "", Fold(""))
}
