package model

import "time"

// User represents an application user record as stored in the `users`
// table. The password column holds a bcrypt hash and is never serialized
// to clients; handlers build response types without it.
//
// Fields:
//  ID        – primary key identifier of the user.
//  Name      – display name.
//  Email     – unique email address.
//  Password  – bcrypt hashed password.
//  Phone     – contact phone number.
//  CreatedAt – timestamp of registration.
//  UpdatedAt – timestamp of last profile update.
type User struct {
	ID        uint64    // users.id
	Name      string    // users.name
	Email     string    // users.email
	Password  string    // users.password (bcrypt hash)
	Phone     string    // users.phone
	CreatedAt time.Time // users.created_at
	UpdatedAt time.Time // users.updated_at
}
