package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveReadFlags(t *testing.T) {
	orderBy := primitive.NewObjectID()
	orderTo := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	byFlag, toFlag := ResolveReadFlags(orderBy, orderTo, orderBy)
	assert.True(t, byFlag)
	assert.False(t, toFlag)

	byFlag, toFlag = ResolveReadFlags(orderBy, orderTo, orderTo)
	assert.False(t, byFlag)
	assert.True(t, toFlag)

	byFlag, toFlag = ResolveReadFlags(orderBy, orderTo, stranger)
	assert.False(t, byFlag)
	assert.False(t, toFlag)
}

func TestResolveReadFlagsSelfOrder(t *testing.T) {
	self := primitive.NewObjectID()

	byFlag, toFlag := ResolveReadFlags(self, self, self)
	assert.True(t, byFlag)
	assert.True(t, toFlag)
}
