package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeEmailTaken = errors.New("employee email already exists")

// Employee is a staff record. Its lifecycle is independent from tasks;
// deleting an employee clears the weak reference on any assigned tasks
// instead of cascading.
type Employee struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Role      string    `json:"role" bson:"role"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
