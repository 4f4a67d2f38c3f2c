// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./church.go -destination=../mocks/mock_church_repository.go -package=mocks ChurchRepositoryIface
//go:generate mockgen -source=./invitation.go -destination=../mocks/mock_invitation_repository.go -package=mocks InvitationRepositoryIface
//go:generate mockgen -source=./member.go -destination=../mocks/mock_member_repository.go -package=mocks MemberRepositoryIface
//go:generate mockgen -source=./event.go -destination=../mocks/mock_event_repository.go -package=mocks EventRepositoryIface
//go:generate mockgen -source=./activity_log.go -destination=../mocks/mock_activity_log_repository.go -package=mocks ActivityLogRepositoryIface
