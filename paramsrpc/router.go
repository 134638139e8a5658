package paramsrpc

import (
	"github.com/gin-gonic/gin"

	"github.com/squarecore/squared/chaincfg"
)

type Service struct {
	handle *Handle
}

func NewService(params *chaincfg.Params) *Service {
	return &Service{
		handle: NewHandle(params),
	}
}

func (s *Service) InitRouter(r *gin.Engine, proxy string) {
	r.GET(proxy+"/health", s.handle.getHealth)

	// network identity
	r.GET(proxy+"/network", s.handle.getNetwork)
	r.GET(proxy+"/genesis", s.handle.getGenesis)
	r.GET(proxy+"/checkpoints", s.handle.getCheckpoints)
	r.GET(proxy+"/seeds", s.handle.getSeeds)

	// consensus rules
	r.GET(proxy+"/consensus", s.handle.getConsensus)
	r.GET(proxy+"/deployments", s.handle.getDeployments)
	r.GET(proxy+"/deployment/:name", s.handle.getDeployment)
}
