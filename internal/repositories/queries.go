package repositories

// Parameterized statements used by the repositories. Kept together so
// the full SQL surface of the data layer is visible in one place.

// User queries.
const (
	queryInsertUser = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING username, date_joined
	`

	queryUserExists = `
		SELECT username
		FROM users
		WHERE username = $1
	`

	queryEmailExists = `
		SELECT 1
		FROM users
		WHERE email = $1
	`

	queryGetUserByEmail = `
		SELECT username, email, password_hash, date_joined, description
		FROM users
		WHERE email = $1
	`

	queryGetUserDetails = `
		SELECT username, email, date_joined, description
		FROM users
		WHERE username = $1
	`

	queryUpdateUsername = `
		UPDATE users
		SET username = $2
		WHERE username = $1
		RETURNING username
	`

	queryUpdateDescription = `
		UPDATE users
		SET description = $2
		WHERE username = $1
		RETURNING username, description
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE username = $1
	`
)

// Friendship queries.
const (
	queryCheckFriendship = `
		SELECT 1
		FROM user_friends
		WHERE user_username = $1 AND friend_username = $2
	`

	queryAddFriend = `
		INSERT INTO user_friends (user_username, friend_username)
		VALUES ($1, $2)
	`

	queryRemoveFriend = `
		DELETE FROM user_friends
		WHERE user_username = $1 AND friend_username = $2
	`

	queryGetFollowers = `
		SELECT user_username
		FROM user_friends
		WHERE friend_username = $1
	`

	queryGetFollowing = `
		SELECT friend_username
		FROM user_friends
		WHERE user_username = $1
	`
)

// Library queries. The upsert is a single atomic statement so that two
// concurrent adds of the same (username, book_id) cannot race into a
// duplicate row; added_at keeps its first-insert value on update.
const (
	queryUpsertUserBook = `
		INSERT INTO user_books (username, book_id, rating, review, status, added_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		ON CONFLICT (username, book_id) DO UPDATE
		SET rating = EXCLUDED.rating,
		    review = EXCLUDED.review,
		    status = EXCLUDED.status
		RETURNING username, book_id, rating, review, status, added_at
	`

	queryDeleteUserBook = `
		DELETE FROM user_books
		WHERE username = $1 AND book_id = $2
	`

	queryListUserBooks = `
		SELECT username, book_id, rating, review, status, added_at
		FROM user_books
		WHERE username = $1
	`
)
