package seeder

import (
	"context"
	"fmt"

	"clinica-api/internal/domain/entity"
	"clinica-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Capitals are the 27 Brazilian state capitals, one per federative unit.
var Capitals = []entity.Cidade{
	{Nome: "Rio Branco", Estado: "Acre"},
	{Nome: "Maceió", Estado: "Alagoas"},
	{Nome: "Macapá", Estado: "Amapá"},
	{Nome: "Manaus", Estado: "Amazonas"},
	{Nome: "Salvador", Estado: "Bahia"},
	{Nome: "Fortaleza", Estado: "Ceará"},
	{Nome: "Brasília", Estado: "Distrito Federal"},
	{Nome: "Vitória", Estado: "Espírito Santo"},
	{Nome: "Goiânia", Estado: "Goiás"},
	{Nome: "São Luís", Estado: "Maranhão"},
	{Nome: "Cuiabá", Estado: "Mato Grosso"},
	{Nome: "Campo Grande", Estado: "Mato Grosso do Sul"},
	{Nome: "Belo Horizonte", Estado: "Minas Gerais"},
	{Nome: "Belém", Estado: "Pará"},
	{Nome: "João Pessoa", Estado: "Paraíba"},
	{Nome: "Curitiba", Estado: "Paraná"},
	{Nome: "Recife", Estado: "Pernambuco"},
	{Nome: "Teresina", Estado: "Piauí"},
	{Nome: "Rio de Janeiro", Estado: "Rio de Janeiro"},
	{Nome: "Natal", Estado: "Rio Grande do Norte"},
	{Nome: "Porto Alegre", Estado: "Rio Grande do Sul"},
	{Nome: "Porto Velho", Estado: "Rondônia"},
	{Nome: "Boa Vista", Estado: "Roraima"},
	{Nome: "Florianópolis", Estado: "Santa Catarina"},
	{Nome: "São Paulo", Estado: "São Paulo"},
	{Nome: "Aracaju", Estado: "Sergipe"},
	{Nome: "Palmas", Estado: "Tocantins"},
}

type DefaultUser struct {
	Name     string
	Email    string
	Password string
}

type Seeder struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	cidadeRepo repository.CidadeRepository
}

func New(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, cidadeRepo repository.CidadeRepository) *Seeder {
	return &Seeder{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		cidadeRepo: cidadeRepo,
	}
}

// Run creates the default user and the capitals in one transaction. Running
// it again leaves existing rows alone.
func (s *Seeder) Run(ctx context.Context, user DefaultUser) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	if err := s.seedUser(tx, user); err != nil {
		return err
	}
	if err := s.seedCidades(tx); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func (s *Seeder) seedUser(tx *gorm.DB, user DefaultUser) error {
	existing, err := s.userRepo.FindByEmail(tx, user.Email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		s.log.Infof("User %s already exists, skipping", user.Email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(tx, &entity.User{
		Name:     user.Name,
		Email:    user.Email,
		Password: string(hashed),
	}); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Infof("Seeded user %s", user.Email)
	return nil
}

func (s *Seeder) seedCidades(tx *gorm.DB) error {
	existing, err := s.cidadeRepo.FindAll(tx)
	if err != nil {
		return fmt.Errorf("list cidades: %w", err)
	}
	if len(existing) > 0 {
		s.log.Infof("%d cidades already present, skipping", len(existing))
		return nil
	}

	for _, capital := range Capitals {
		cidade := capital
		if err := s.cidadeRepo.Create(tx, &cidade); err != nil {
			return fmt.Errorf("create cidade %s: %w", capital.Nome, err)
		}
	}

	s.log.Infof("Seeded %d cidades", len(Capitals))
	return nil
}
