package paramsrpc

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/squarecore/squared/chaincfg"
)

type Handle struct {
	model *Model
}

func NewHandle(params *chaincfg.Params) *Handle {
	return &Handle{
		model: NewModel(params),
	}
}

func okResp() BaseResp {
	return BaseResp{
		Code: 0,
		Msg:  "ok",
	}
}

// @Summary Health Check
// @Description Check the health status of the service
// @Tags params
// @Produce json
// @Success 200 {object} HealthStatusResp "Successful response"
// @Router /health [get]
func (s *Handle) getHealth(c *gin.Context) {
	rsp := &HealthStatusResp{
		Status:      "ok",
		Network:     s.model.params.Name,
		GenesisHash: s.model.params.GenesisHash.String(),
	}
	c.JSON(http.StatusOK, rsp)
}

// @Summary Get the network identity
// @Description Name, magic, port, keys, address prefixes and behavior flags
// @Tags params
// @Produce json
// @Success 200 {object} NetworkResp "Successful response"
// @Router /network [get]
func (s *Handle) getNetwork(c *gin.Context) {
	resp := &NetworkResp{
		BaseResp: okResp(),
		Data:     s.model.getNetwork(),
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get the genesis block
// @Description Genesis header fields, hashes and serialized coinbase
// @Tags params
// @Produce json
// @Success 200 {object} GenesisResp "Successful response"
// @Router /genesis [get]
func (s *Handle) getGenesis(c *gin.Context) {
	resp := &GenesisResp{
		BaseResp: okResp(),
	}
	info, err := s.model.getGenesis()
	if err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.Data = info
	c.JSON(http.StatusOK, resp)
}

// @Summary Get the consensus parameters
// @Description Subsidy, masternode, governance, proof of work and voting parameters
// @Tags params
// @Produce json
// @Success 200 {object} ConsensusResp "Successful response"
// @Router /consensus [get]
func (s *Handle) getConsensus(c *gin.Context) {
	resp := &ConsensusResp{
		BaseResp: okResp(),
		Data:     s.model.getConsensus(),
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get all deployments
// @Description Version bits deployments with their effective window and threshold
// @Tags params
// @Produce json
// @Success 200 {object} DeploymentsResp "Successful response"
// @Router /deployments [get]
func (s *Handle) getDeployments(c *gin.Context) {
	resp := &DeploymentsResp{
		BaseResp: okResp(),
	}
	result, err := s.model.getDeployments()
	if err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.Data = result
	c.JSON(http.StatusOK, resp)
}

// @Summary Get one deployment
// @Description Version bits deployment by name (testdummy, csv, dip0001)
// @Tags params
// @Produce json
// @Param name path string true "deployment name"
// @Success 200 {object} DeploymentResp "Successful response"
// @Router /deployment/{name} [get]
func (s *Handle) getDeployment(c *gin.Context) {
	resp := &DeploymentResp{
		BaseResp: okResp(),
	}
	id, err := chaincfg.DeploymentByName(c.Param("name"))
	if err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	result, err := s.model.getDeployment(id)
	if err != nil {
		resp.Code = -1
		resp.Msg = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.Data = result
	c.JSON(http.StatusOK, resp)
}

// @Summary Get the checkpoints
// @Description Checkpoints and the sync estimates recorded with the last one
// @Tags params
// @Produce json
// @Success 200 {object} CheckpointsResp "Successful response"
// @Router /checkpoints [get]
func (s *Handle) getCheckpoints(c *gin.Context) {
	resp := &CheckpointsResp{
		BaseResp: okResp(),
		Data:     s.model.getCheckpoints(),
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get the seeds
// @Description DNS seeds and fixed seed addresses
// @Tags params
// @Produce json
// @Success 200 {object} SeedsResp "Successful response"
// @Router /seeds [get]
func (s *Handle) getSeeds(c *gin.Context) {
	resp := &SeedsResp{
		BaseResp: okResp(),
		Data:     s.model.getSeeds(),
	}
	c.JSON(http.StatusOK, resp)
}
