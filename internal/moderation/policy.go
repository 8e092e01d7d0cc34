package moderation

// DeletionPolicy escolhe o que "remover um post" significa no deployment:
// apagar a linha e purgar as dependentes (HardDelete) ou marcar is_deleted
// e deixar as listagens filtrarem/redigirem (SoftDelete).
type DeletionPolicy string

const (
	HardDelete DeletionPolicy = "hard"
	SoftDelete DeletionPolicy = "soft"
)

// ParsePolicy interpreta o valor de DELETION_POLICY do ambiente.
func ParsePolicy(raw string) DeletionPolicy {
	if DeletionPolicy(raw) == SoftDelete {
		return SoftDelete
	}
	return HardDelete
}
