package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *UserDocument {
	d := NewUserDocument()
	d.Append(User{FirstName: "Ana", LastName: "Lopez", Identification: "100", Age: 30, Email: "ana@x.co", Password: "a"})
	d.Append(User{FirstName: "Bruno", LastName: "Diaz", Identification: "200", Age: 40, Email: "bruno@x.co", Password: "b"})
	d.Append(User{FirstName: "Carla", LastName: "Ruiz", Identification: "100", Age: 50, Email: "carla@x.co", Password: "c"})
	return d
}

func TestFindByIdentification_FirstMatch(t *testing.T) {
	d := sampleDoc()

	u, ok := d.FindByIdentification("100")
	require.True(t, ok)
	assert.Equal(t, "Ana", u.FirstName)

	u, ok = d.FindByIdentification("200")
	require.True(t, ok)
	assert.Equal(t, "Bruno", u.FirstName)
}

func TestFindByIdentification_ReturnsCopy(t *testing.T) {
	d := sampleDoc()

	u, ok := d.FindByIdentification("200")
	require.True(t, ok)
	u.FirstName = "Changed"

	assert.Equal(t, "Bruno", d.RegisteredUsers[1].FirstName)
}

func TestFindByIdentification_NotFound(t *testing.T) {
	d := sampleDoc()

	u, ok := d.FindByIdentification("999")
	assert.False(t, ok)
	assert.Nil(t, u)

	// exact string equality, no numeric normalisation
	_, ok = d.FindByIdentification("0100")
	assert.False(t, ok)
}

func TestRemoveByIdentification(t *testing.T) {
	d := sampleDoc()

	require.True(t, d.RemoveByIdentification("100"))
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "Bruno", d.RegisteredUsers[0].FirstName)
	assert.Equal(t, "Carla", d.RegisteredUsers[1].FirstName)

	// second record with the same id is now the first match
	u, ok := d.FindByIdentification("100")
	require.True(t, ok)
	assert.Equal(t, "Carla", u.FirstName)
}

func TestRemoveByIdentification_NotFoundLeavesDocument(t *testing.T) {
	d := sampleDoc()
	before := sampleDoc()

	assert.False(t, d.RemoveByIdentification("999"))
	assert.Empty(t, cmp.Diff(before, d))
}

func TestUserDocument_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewUserDocument())
	require.NoError(t, err)
	assert.JSONEq(t, `{"registeredUsers":[]}`, string(b))

	d := NewUserDocument()
	d.Append(User{FirstName: "Ana", LastName: "Lopez", Identification: "12", Age: 18, Email: "a@b.co", Password: "pw"})
	b, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t,
		`{"registeredUsers":[{"firstName":"Ana","lastName":"Lopez","identification":"12","age":18,"email":"a@b.co","password":"pw"}]}`,
		string(b))
}
