package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeploymentNoOverlap(t *testing.T) {
	for _, build := range []func() *Params{mainNetParams, testNetParams,
		regTestParams} {

		p := build()
		a, b, overlap := p.Consensus.deploymentOverlaps()
		require.False(t, overlap, "%s: %v and %v share a bit", p.Name, a, b)
	}
}

func TestDeploymentOverlapDetected(t *testing.T) {
	p := mainNetParams()
	p.Consensus.Deployments[DeploymentDIP0001].BitNumber = 0
	p.Consensus.Deployments[DeploymentDIP0001].StartTime = 1549811869

	a, b, overlap := p.Consensus.deploymentOverlaps()
	require.True(t, overlap)
	require.Equal(t, DeploymentCSV, a)
	require.Equal(t, DeploymentDIP0001, b)
}

func TestDIP0001Window(t *testing.T) {
	tests := []struct {
		build         func() *Params
		wantWindow    uint32
		wantThreshold uint32
	}{
		{mainNetParams, 4032, 3226},
		{testNetParams, 100, 50},
		{regTestParams, 144, 108},
	}

	for _, test := range tests {
		p := test.build()
		d, err := p.Consensus.Deployment(DeploymentDIP0001)
		require.NoError(t, err)
		require.EqualValues(t, 1, d.BitNumber)
		require.Equal(t, test.wantWindow, d.EffectiveWindow(&p.Consensus), p.Name)
		require.Equal(t, test.wantThreshold, d.EffectiveThreshold(&p.Consensus), p.Name)
	}
}

func TestDeploymentDefaults(t *testing.T) {
	p := mainNetParams()
	csv, err := p.Consensus.Deployment(DeploymentCSV)
	require.NoError(t, err)
	require.EqualValues(t, 2016, csv.EffectiveWindow(&p.Consensus))
	require.EqualValues(t, 1916, csv.EffectiveThreshold(&p.Consensus))
	require.EqualValues(t, 1518187550, csv.StartTime)
	require.EqualValues(t, 1549811869, csv.ExpireTime)

	dummy, err := p.Consensus.Deployment(DeploymentTestDummy)
	require.NoError(t, err)
	require.EqualValues(t, 28, dummy.BitNumber)

	regtest := regTestParams()
	for id := DeploymentID(0); id < DefinedDeployments; id++ {
		d, err := regtest.Consensus.Deployment(id)
		require.NoError(t, err)
		require.Zero(t, d.StartTime, id.String())
		require.EqualValues(t, 999999999999, d.ExpireTime, id.String())
	}
}

func TestDeploymentUnknown(t *testing.T) {
	p := mainNetParams()
	_, err := p.Consensus.Deployment(DefinedDeployments)
	require.ErrorIs(t, err, ErrUnknownDeployment)
}

func TestDeploymentNames(t *testing.T) {
	for id := DeploymentID(0); id < DefinedDeployments; id++ {
		got, err := DeploymentByName(id.String())
		require.NoError(t, err)
		require.Equal(t, id, got)
	}

	var names []string
	for id := DeploymentID(0); id < DefinedDeployments; id++ {
		names = append(names, id.String())
	}
	require.Equal(t, []string{"testdummy", "csv", "dip0001"}, names)

	for _, name := range []string{"segwit", "bip147"} {
		_, err := DeploymentByName(name)
		require.ErrorIs(t, err, ErrUnknownDeployment, name)
	}
	require.Equal(t, "Unknown DeploymentID (9)", DeploymentID(9).String())
}
