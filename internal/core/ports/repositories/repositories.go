package repositories

// Container groups every repository implementation behind one value so the
// service layer can be wired from a single place.
type Container struct {
	User       UserRepository
	UserAuth   UserAuthRepository
	Token      TokenRepository
	ActiveCode ActiveCodeRepository
}
