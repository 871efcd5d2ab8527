package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentCreateRejectsDuplicateName(t *testing.T) {
	repo := NewDepartmentRepository()

	_, err := repo.Create("Engineering")
	require.NoError(t, err)

	_, err = repo.Create("engineering")
	assert.ErrorIs(t, err, ErrDepartmentExists)
}

func TestDepartmentUpdateAndDelete(t *testing.T) {
	repo := NewDepartmentRepository()

	created, err := repo.Create("Design")
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, "Product Design")
	require.NoError(t, err)
	assert.Equal(t, "Product Design", updated.Name)

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.FindByID(created.ID)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}
